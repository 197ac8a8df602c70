package vmath

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// All random sampling shares one generator. Scripts may be ticked from the
// host concurrently, so access is serialized.
var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Reseed resets the shared generator, making subsequent samples
// deterministic. Intended for tests.
func Reseed(seed int64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	rng = rand.New(rand.NewSource(seed))
}

func randFloat() float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Float64()
}

// RandomXY returns a unit vector pointing in a uniformly random direction on
// the ground plane.
func RandomXY() Vector3 {
	theta := randFloat() * 2 * math.Pi
	return Vector3{
		X: float32(math.Cos(theta)),
		Y: float32(math.Sin(theta)),
	}
}

// RandomXYZ returns a uniformly random point on the unit sphere. The
// latitude comes from the arccosine of a uniform value so the distribution
// is not biased toward the poles.
func RandomXYZ() Vector3 {
	theta := randFloat() * 2 * math.Pi
	phi := math.Acos(2*randFloat() - 1)
	sinPhi := math.Sin(phi)
	return Vector3{
		X: float32(sinPhi * math.Cos(theta)),
		Y: float32(sinPhi * math.Sin(theta)),
		Z: float32(math.Cos(phi)),
	}
}

// Around returns a uniformly random point on the horizontal circle of the
// given radius centered at v.
func (v Vector3) Around(distance float32) Vector3 {
	return v.Add(RandomXY().Scale(distance))
}
