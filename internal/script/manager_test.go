package script

import (
	"testing"
	"time"
)

type MockScript struct {
	Base
	name        string
	startCalled bool
	tickCount   int
	abortCalled bool
	onTick      func(*MockScript)
}

func (m *MockScript) Name() string { return m.name }

func (m *MockScript) Start() {
	m.startCalled = true
}

func (m *MockScript) Tick() {
	m.tickCount++
	if m.onTick != nil {
		m.onTick(m)
	}
}

func (m *MockScript) Abort() {
	m.abortCalled = true
}

func TestManagerStartsBeforeFirstTick(t *testing.T) {
	mgr := NewManager(nil)
	s := &MockScript{name: "Test"}
	mgr.Add(s)

	mgr.TickAll()

	if !s.startCalled {
		t.Error("Start() was not called")
	}
	if s.tickCount != 1 {
		t.Errorf("Expected 1 tick, got %d", s.tickCount)
	}

	mgr.TickAll()
	if s.tickCount != 2 {
		t.Errorf("Expected 2 ticks, got %d", s.tickCount)
	}
}

func TestManagerPauseResume(t *testing.T) {
	mgr := NewManager(nil)
	s := &MockScript{name: "Test"}
	mgr.Add(s)

	mgr.TickAll()
	s.Pause()
	mgr.TickAll()
	mgr.TickAll()

	if s.tickCount != 1 {
		t.Errorf("Paused script ticked: %d ticks", s.tickCount)
	}

	s.Resume()
	mgr.TickAll()
	if s.tickCount != 2 {
		t.Errorf("Resumed script did not tick: %d ticks", s.tickCount)
	}
}

func TestManagerWaitSuspendsTicks(t *testing.T) {
	mgr := NewManager(nil)
	s := &MockScript{name: "Test"}
	s.onTick = func(m *MockScript) {
		if m.tickCount == 1 {
			m.Wait(30 * time.Millisecond)
		}
	}
	mgr.Add(s)

	mgr.TickAll()
	mgr.TickAll()
	if s.tickCount != 1 {
		t.Fatalf("Waiting script ticked: %d ticks", s.tickCount)
	}

	time.Sleep(40 * time.Millisecond)
	mgr.TickAll()
	if s.tickCount != 2 {
		t.Errorf("Script did not wake after its wait: %d ticks", s.tickCount)
	}
}

func TestManagerAbortAll(t *testing.T) {
	mgr := NewManager(nil)
	a := &MockScript{name: "A"}
	b := &MockScript{name: "B"}
	mgr.Add(a)
	mgr.Add(b)

	mgr.TickAll()
	mgr.AbortAll()

	if !a.abortCalled || !b.abortCalled {
		t.Error("Abort() was not called on all scripts")
	}
	if mgr.Count() != 0 {
		t.Errorf("Expected 0 live scripts, got %d", mgr.Count())
	}

	mgr.TickAll()
	if a.tickCount != 1 || b.tickCount != 1 {
		t.Error("Aborted scripts were ticked")
	}
}

func TestManagerPanicAbortsOnlyThatScript(t *testing.T) {
	mgr := NewManager(nil)
	bad := &MockScript{name: "Bad"}
	bad.onTick = func(m *MockScript) { panic("boom") }
	good := &MockScript{name: "Good"}
	mgr.Add(bad)
	mgr.Add(good)

	mgr.TickAll()

	if !bad.abortCalled {
		t.Error("Panicking script was not aborted")
	}
	if good.tickCount != 1 {
		t.Error("Healthy script was not ticked after a sibling panicked")
	}

	mgr.TickAll()
	if bad.tickCount != 1 {
		t.Error("Aborted script ticked again")
	}
	if good.tickCount != 2 {
		t.Error("Healthy script stopped ticking")
	}
}

func TestRegistry(t *testing.T) {
	Register("ZScript", func(env Env) Script { return &MockScript{name: "ZScript"} })
	Register("AScript", func(env Env) Script { return &MockScript{name: "AScript"} })

	names := Available()
	foundA, foundZ := false, false
	for i, name := range names {
		if name == "AScript" {
			foundA = true
		}
		if name == "ZScript" {
			foundZ = true
		}
		if i > 0 && names[i-1] > name {
			t.Errorf("Available() is not sorted: %v", names)
		}
	}
	if !foundA || !foundZ {
		t.Errorf("Registered scripts missing from Available(): %v", names)
	}

	s := Create("AScript", Env{})
	if s == nil || s.Name() != "AScript" {
		t.Error("Create did not build the registered script")
	}
	if Create("Missing", Env{}) != nil {
		t.Error("Create of an unknown name should return nil")
	}
}
