// Package script implements the managed side of the script lifecycle:
// registration, tick dispatch, timed suspension, pause/resume, and abort
// cleanup. The native-side scheduler that drives ticks lives outside this
// module; the host calls TickAll from its loop.
package script

import (
	"time"
)

// Script is the lifecycle every mod implements. Start runs once before the
// first tick, Tick runs every host tick, Abort runs when the script is torn
// down and must release anything it changed in the world.
type Script interface {
	Name() string
	Start()
	Tick()
	Abort()

	runtime() *Base
}

// Base carries the per-script runtime state. Scripts embed it to inherit
// no-op lifecycle methods plus Wait, Pause, and Resume.
type Base struct {
	paused bool
	wakeAt time.Time
}

func (b *Base) Start() {}
func (b *Base) Tick()  {}
func (b *Base) Abort() {}

func (b *Base) runtime() *Base { return b }

// Wait suspends the script for the given duration: the manager skips its
// Tick until the deadline passes.
func (b *Base) Wait(d time.Duration) {
	b.wakeAt = time.Now().Add(d)
}

// Pause stops the script from ticking until Resume.
func (b *Base) Pause() { b.paused = true }

// Resume lets a paused script tick again.
func (b *Base) Resume() { b.paused = false }

// IsPaused reports whether the script is paused.
func (b *Base) IsPaused() bool { return b.paused }

func (b *Base) ready(now time.Time) bool {
	return !b.paused && !now.Before(b.wakeAt)
}
