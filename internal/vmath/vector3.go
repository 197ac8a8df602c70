// Package vmath provides the vector types shared between scripts and the
// native layer. Vector3 mirrors the engine's own 3D vector byte for byte so
// native memory can be reinterpreted as it directly.
package vmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 is a point or direction in world space. The blank field keeps the
// struct at the engine's 16-byte stride; it carries no value and is excluded
// from == comparisons.
type Vector3 struct {
	X float32
	Y float32
	Z float32
	_ float32
}

// New returns the vector (x, y, z).
func New(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromSlice builds a vector from the first three elements of s.
// It panics if s has fewer than three elements.
func FromSlice(s []float32) Vector3 {
	if len(s) < 3 {
		panic(fmt.Sprintf("vmath: FromSlice needs 3 elements, got %d", len(s)))
	}
	return Vector3{X: s[0], Y: s[1], Z: s[2]}
}

// Component returns the component at index i (0=X, 1=Y, 2=Z).
// It panics for any other index.
func (v Vector3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vmath: component index %d out of range [0, 2]", i))
}

// SetComponent sets the component at index i (0=X, 1=Y, 2=Z).
// It panics for any other index.
func (v *Vector3) SetComponent(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("vmath: component index %d out of range [0, 2]", i))
	}
}

// Zero returns the vector (0, 0, 0).
func Zero() Vector3 { return Vector3{} }

// One returns the vector (1, 1, 1).
func One() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

// UnitX returns the vector (1, 0, 0).
func UnitX() Vector3 { return Vector3{X: 1} }

// UnitY returns the vector (0, 1, 0).
func UnitY() Vector3 { return Vector3{Y: 1} }

// UnitZ returns the vector (0, 0, 1).
func UnitZ() Vector3 { return Vector3{Z: 1} }

// World-space direction constants. The engine's frame has Y pointing north
// and Z pointing up.

func WorldUp() Vector3    { return Vector3{Z: 1} }
func WorldDown() Vector3  { return Vector3{Z: -1} }
func WorldNorth() Vector3 { return Vector3{Y: 1} }
func WorldSouth() Vector3 { return Vector3{Y: -1} }
func WorldEast() Vector3  { return Vector3{X: 1} }
func WorldWest() Vector3  { return Vector3{X: -1} }

// Entity-relative direction constants, valid for an entity at zero heading.

func RelativeRight() Vector3  { return Vector3{X: 1} }
func RelativeLeft() Vector3   { return Vector3{X: -1} }
func RelativeFront() Vector3  { return Vector3{Y: 1} }
func RelativeBack() Vector3   { return Vector3{Y: -1} }
func RelativeTop() Vector3    { return Vector3{Z: 1} }
func RelativeBottom() Vector3 { return Vector3{Z: -1} }

// Length returns the Euclidean magnitude of v.
func (v Vector3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// LengthSquared returns the squared magnitude, avoiding the square root for
// comparison-only use.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize scales v to unit length in place. A zero vector is left
// unchanged rather than dividing by zero.
func (v *Vector3) Normalize() {
	length := v.Length()
	if length == 0 {
		return
	}
	inv := 1 / length
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// Normalized returns a unit-length copy of v without mutating it.
func (v Vector3) Normalized() Vector3 {
	v.Normalize()
	return v
}

// DistanceTo returns the Euclidean distance between v and other.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return other.Sub(v).Length()
}

// DistanceToSquared returns the squared distance between v and other.
func (v Vector3) DistanceToSquared(other Vector3) float32 {
	return other.Sub(v).LengthSquared()
}

// DistanceTo2D returns the distance between v and other on the ground plane,
// ignoring Z.
func (v Vector3) DistanceTo2D(other Vector3) float32 {
	a := Vector3{X: v.X, Y: v.Y}
	b := Vector3{X: other.X, Y: other.Y}
	return a.DistanceTo(b)
}

// DistanceToSquared2D returns the squared ground-plane distance, ignoring Z.
func (v Vector3) DistanceToSquared2D(other Vector3) float32 {
	a := Vector3{X: v.X, Y: v.Y}
	b := Vector3{X: other.X, Y: other.Y}
	return a.DistanceToSquared(b)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector3) float32 { return a.DistanceTo(b) }

// DistanceSquared returns the squared distance between a and b.
func DistanceSquared(a, b Vector3) float32 { return a.DistanceToSquared(b) }

// Distance2D returns the ground-plane distance between a and b.
func Distance2D(a, b Vector3) float32 { return a.DistanceTo2D(b) }

// DistanceSquared2D returns the squared ground-plane distance between a and b.
func DistanceSquared2D(a, b Vector3) float32 { return a.DistanceToSquared2D(b) }

// Angle returns the unsigned angle in degrees between from and to,
// always in [0, 180].
func Angle(from, to Vector3) float32 {
	dot := float64(from.Normalized().Dot(to.Normalized()))
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return float32(math.Acos(dot) * (180 / math.Pi))
}

// SignedAngle returns the angle between from and to in degrees, negative
// when to lies on the opposite rotational side of from relative to
// planeNormal.
func SignedAngle(from, to, planeNormal Vector3) float32 {
	sign := float32(1)
	if to.Dot(planeNormal.Cross(from)) < 0 {
		sign = -1
	}
	return Angle(from, to) * sign
}

// ToHeading converts a direction to an engine heading in degrees, in
// [0, 360). The engine frame has Y pointing north with headings growing
// toward west.
func (v Vector3) ToHeading() float32 {
	h := (math.Atan2(float64(v.X), float64(-v.Y)) + math.Pi) * (180 / math.Pi)
	return float32(math.Mod(h, 360))
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul returns the component-wise product of v and other.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Div returns v divided by s. Division by zero follows IEEE semantics and
// produces infinities or NaNs.
func (v Vector3) Div(s float32) Vector3 {
	inv := 1 / s
	return Vector3{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product of v and other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Lerp linearly interpolates from start to end by amount. The amount is not
// clamped; values outside [0, 1] extrapolate.
func Lerp(start, end Vector3, amount float32) Vector3 {
	return start.Add(end.Sub(start).Scale(amount))
}

// Minimize returns the component-wise minimum of a and b.
func Minimize(a, b Vector3) Vector3 {
	return Vector3{
		X: minf(a.X, b.X),
		Y: minf(a.Y, b.Y),
		Z: minf(a.Z, b.Z),
	}
}

// Maximize returns the component-wise maximum of a and b.
func Maximize(a, b Vector3) Vector3 {
	return Vector3{
		X: maxf(a.X, b.X),
		Y: maxf(a.Y, b.Y),
		Z: maxf(a.Z, b.Z),
	}
}

// Clamp restricts v component-wise to the box [min, max].
func Clamp(v, min, max Vector3) Vector3 {
	return Minimize(Maximize(v, min), max)
}

// Project returns v projected onto onNormal. The result is undefined when
// onNormal is the zero vector.
func Project(v, onNormal Vector3) Vector3 {
	return onNormal.Scale(v.Dot(onNormal) / onNormal.Dot(onNormal))
}

// ProjectOnPlane returns v projected onto the plane with the given normal.
func ProjectOnPlane(v, planeNormal Vector3) Vector3 {
	return v.Sub(Project(v, planeNormal))
}

// Reflect returns v reflected off the surface with the given normal.
// The normal is assumed to be unit length.
func Reflect(v, normal Vector3) Vector3 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// XY drops the Z component, projecting v onto the ground plane.
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// ToArray returns the components as [X, Y, Z].
func (v Vector3) ToArray() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Mgl converts v to a mathgl vector for use with mathgl-based helpers.
func (v Vector3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts a mathgl vector to a Vector3.
func FromMgl(m mgl32.Vec3) Vector3 {
	return Vector3{X: m.X(), Y: m.Y(), Z: m.Z()}
}

// String renders v as "X:{x} Y:{y} Z:{z}" with default float formatting.
func (v Vector3) String() string {
	return fmt.Sprintf("X:%v Y:%v Z:%v", v.X, v.Y, v.Z)
}

// Format renders v like String but applies the given fmt verb (for example
// "%.2f") to each component.
func (v Vector3) Format(verb string) string {
	return fmt.Sprintf("X:"+verb+" Y:"+verb+" Z:"+verb, v.X, v.Y, v.Z)
}

// Hash returns a hash of the three components. Padding does not participate.
func (v Vector3) Hash() uint32 {
	h := math.Float32bits(v.X)
	h = h*397 ^ math.Float32bits(v.Y)
	h = h*397 ^ math.Float32bits(v.Z)
	return h
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
