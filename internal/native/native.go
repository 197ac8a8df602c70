// Package native declares the boundary to the game engine. The engine and
// the input system live on the other side of it; everything here is either
// an interface the host implements or a constant the engine defines.
package native

import (
	"github.com/Tivertoni/scripthookvdotnet/internal/vmath"
)

// Hash identifies a native engine function.
type Hash uint64

// Invoker calls native engine functions by hash. Vector results and
// arguments cross the boundary as vmath.NativeVector3, the wide-stride
// representation the native calling convention expects.
type Invoker interface {
	Void(h Hash, args ...any)
	Int(h Hash, args ...any) int
	Float(h Hash, args ...any) float32
	Bool(h Hash, args ...any) bool
	Vector(h Hash, args ...any) vmath.NativeVector3
}

// Input reports the state of the engine's control system.
type Input interface {
	IsPressed(c Control) bool
	IsJustPressed(c Control) bool
}

// Notifier posts a message to the on-screen feed.
type Notifier interface {
	Notify(msg string)
}
