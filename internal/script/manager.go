package script

import (
	"time"

	"go.uber.org/zap"
)

type wrapper struct {
	script  Script
	started bool
	aborted bool
}

// Manager owns the registered scripts and dispatches their lifecycle. It is
// driven from a single host goroutine and is not safe for concurrent use.
type Manager struct {
	scripts []wrapper
	log     *zap.Logger
}

func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{log: log}
}

// Add registers a script. It starts on the next tick.
func (m *Manager) Add(s Script) {
	m.scripts = append(m.scripts, wrapper{script: s})
	m.log.Info("Script registered", zap.String("script", s.Name()))
}

// Count returns the number of live (not aborted) scripts.
func (m *Manager) Count() int {
	n := 0
	for i := range m.scripts {
		if !m.scripts[i].aborted {
			n++
		}
	}
	return n
}

// TickAll runs one host tick: starts scripts that have not started yet and
// ticks every script that is neither paused nor waiting. A panic in one
// script aborts that script only.
func (m *Manager) TickAll() {
	now := time.Now()
	for i := range m.scripts {
		w := &m.scripts[i]
		if w.aborted {
			continue
		}
		m.tickOne(w, now)
	}
}

func (m *Manager) tickOne(w *wrapper, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("Script panicked, aborting it",
				zap.String("script", w.script.Name()),
				zap.Any("panic", r))
			w.aborted = true
			m.abortQuietly(w.script)
		}
	}()

	if !w.started {
		w.script.Start()
		w.started = true
	}
	if w.script.runtime().ready(now) {
		w.script.Tick()
	}
}

// AbortAll tears every script down, running Abort cleanup even for scripts
// that never started.
func (m *Manager) AbortAll() {
	for i := range m.scripts {
		w := &m.scripts[i]
		if w.aborted {
			continue
		}
		w.aborted = true
		m.abortQuietly(w.script)
	}
}

func (m *Manager) abortQuietly(s Script) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("Script panicked during abort",
				zap.String("script", s.Name()),
				zap.Any("panic", r))
		}
	}()
	s.Abort()
}
