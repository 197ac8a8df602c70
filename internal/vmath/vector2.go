package vmath

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector, the target of the Vector3 ground-plane narrowing.
type Vector2 struct {
	X float32
	Y float32
}

// Length returns the Euclidean magnitude of v.
func (v Vector2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalized returns a unit-length copy of v. A zero vector is returned
// unchanged.
func (v Vector2) Normalized() Vector2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Vec3 lifts v back into 3D space with a zero Z component.
func (v Vector2) Vec3() Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

// String renders v as "X:{x} Y:{y}" with default float formatting.
func (v Vector2) String() string {
	return fmt.Sprintf("X:%v Y:%v", v.X, v.Y)
}
