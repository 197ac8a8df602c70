package world

import (
	"testing"

	"github.com/Tivertoni/scripthookvdotnet/internal/native"
	"github.com/Tivertoni/scripthookvdotnet/internal/vmath"
)

// mockInvoker records every native call and replays canned results.
type mockInvoker struct {
	calls   []native.Hash
	args    [][]any
	ints    map[native.Hash]int
	floats  map[native.Hash]float32
	bools   map[native.Hash]bool
	vectors map[native.Hash]vmath.Vector3
}

func newMockInvoker() *mockInvoker {
	return &mockInvoker{
		ints:    make(map[native.Hash]int),
		floats:  make(map[native.Hash]float32),
		bools:   make(map[native.Hash]bool),
		vectors: make(map[native.Hash]vmath.Vector3),
	}
}

func (m *mockInvoker) record(h native.Hash, args []any) {
	m.calls = append(m.calls, h)
	m.args = append(m.args, args)
}

func (m *mockInvoker) Void(h native.Hash, args ...any) { m.record(h, args) }

func (m *mockInvoker) Int(h native.Hash, args ...any) int {
	m.record(h, args)
	return m.ints[h]
}

func (m *mockInvoker) Float(h native.Hash, args ...any) float32 {
	m.record(h, args)
	return m.floats[h]
}

func (m *mockInvoker) Bool(h native.Hash, args ...any) bool {
	m.record(h, args)
	return m.bools[h]
}

func (m *mockInvoker) Vector(h native.Hash, args ...any) vmath.NativeVector3 {
	m.record(h, args)
	return vmath.ToNative(m.vectors[h])
}

func (m *mockInvoker) lastCall() native.Hash {
	if len(m.calls) == 0 {
		return 0
	}
	return m.calls[len(m.calls)-1]
}

func TestEntityPosition(t *testing.T) {
	inv := newMockInvoker()
	inv.vectors[native.GetEntityCoords] = vmath.New(10, 20, 30)

	e := NewEntity(inv, 42)
	pos := e.Position()

	if pos != vmath.New(10, 20, 30) {
		t.Errorf("Position = %v", pos)
	}
	if inv.lastCall() != native.GetEntityCoords {
		t.Error("Position did not call GET_ENTITY_COORDS")
	}
	if inv.args[0][0] != 42 {
		t.Errorf("Expected handle 42 as first arg, got %v", inv.args[0][0])
	}
}

func TestEntitySetPosition(t *testing.T) {
	inv := newMockInvoker()
	e := NewEntity(inv, 7)

	e.SetPosition(vmath.New(1, 2, 3))

	if inv.lastCall() != native.SetEntityCoords {
		t.Error("SetPosition did not call SET_ENTITY_COORDS")
	}
	args := inv.args[0]
	if args[1] != float32(1) || args[2] != float32(2) || args[3] != float32(3) {
		t.Errorf("Coordinates not passed component-wise: %v", args)
	}
}

func TestEntityExists(t *testing.T) {
	inv := newMockInvoker()
	inv.bools[native.DoesEntityExist] = true

	if !NewEntity(inv, 1).Exists() {
		t.Error("Exists returned false")
	}
}

func TestPedVehicleRoundTrip(t *testing.T) {
	inv := newMockInvoker()
	inv.bools[native.IsPedInAnyVehicle] = true
	inv.ints[native.GetVehiclePedIsIn] = 99

	ped := NewPed(inv, 5)
	if !ped.IsInVehicle() {
		t.Fatal("Ped should be in a vehicle")
	}

	veh := ped.CurrentVehicle()
	if veh.Handle != 99 {
		t.Errorf("CurrentVehicle handle = %d, want 99", veh.Handle)
	}
}

func TestPedTaskLeaveVehicleFlags(t *testing.T) {
	inv := newMockInvoker()
	ped := NewPed(inv, 5)
	veh := NewVehicle(inv, 9)

	ped.TaskLeaveVehicle(veh, true)
	if inv.args[0][2] != 1<<8 {
		t.Errorf("keepEngineOn flag not set: %v", inv.args[0])
	}

	ped.TaskLeaveVehicle(veh, false)
	if inv.args[1][2] != 0 {
		t.Errorf("Unexpected flags for plain exit: %v", inv.args[1])
	}
}

func TestVehicleIndicator(t *testing.T) {
	inv := newMockInvoker()
	veh := NewVehicle(inv, 3)

	veh.SetIndicator(IndicatorLeft, true)

	if inv.lastCall() != native.SetVehicleIndicatorLights {
		t.Error("SetIndicator did not call the indicator native")
	}
	args := inv.args[0]
	if args[1] != int(IndicatorLeft) || args[2] != true {
		t.Errorf("Indicator args = %v", args)
	}
}

func TestPlayerPed(t *testing.T) {
	inv := newMockInvoker()
	inv.ints[native.PlayerPedID] = 1234

	ped := NewPlayer(inv).Ped()
	if ped.Handle != 1234 {
		t.Errorf("Player ped handle = %d, want 1234", ped.Handle)
	}
}
