package world

import (
	"github.com/Tivertoni/scripthookvdotnet/internal/native"
	"github.com/Tivertoni/scripthookvdotnet/internal/vmath"
)

// Ped is a handle to a character, player-controlled or AI.
type Ped struct {
	Entity
}

// NewPed wraps an engine ped handle.
func NewPed(inv native.Invoker, handle int) Ped {
	return Ped{Entity: NewEntity(inv, handle)}
}

// CreatePed spawns an AI ped of the given model at a position and returns
// its handle wrapper.
func CreatePed(inv native.Invoker, model uint32, pos vmath.Vector3, heading float32) Ped {
	handle := inv.Int(native.CreatePed, 26, model, pos.X, pos.Y, pos.Z, heading, false, true)
	return NewPed(inv, handle)
}

// IsInVehicle reports whether the ped currently occupies any vehicle.
func (p Ped) IsInVehicle() bool {
	return p.inv.Bool(native.IsPedInAnyVehicle, p.Handle, false)
}

// CurrentVehicle returns the vehicle the ped occupies. Check IsInVehicle
// first; the result is a null handle otherwise.
func (p Ped) CurrentVehicle() Vehicle {
	handle := p.inv.Int(native.GetVehiclePedIsIn, p.Handle, false)
	return NewVehicle(p.inv, handle)
}

// TaskGoTo orders the ped to walk to a position.
func (p Ped) TaskGoTo(pos vmath.Vector3, speed float32) {
	p.inv.Void(native.TaskGoStraightTo, p.Handle, pos.X, pos.Y, pos.Z, speed, -1, 0, 0)
}

// TaskLeaveVehicle orders the ped out of a vehicle. With keepEngineOn the
// ped exits without shutting the vehicle down.
func (p Ped) TaskLeaveVehicle(v Vehicle, keepEngineOn bool) {
	flags := 0
	if keepEngineOn {
		flags = 1 << 8
	}
	p.inv.Void(native.TaskLeaveVehicle, p.Handle, v.Handle, flags)
}

// TaskWander releases the ped to the engine's ambient wander behavior.
func (p Ped) TaskWander() {
	p.inv.Void(native.TaskWanderStandard, p.Handle, 10.0, 10)
}
