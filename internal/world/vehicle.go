package world

import (
	"github.com/Tivertoni/scripthookvdotnet/internal/native"
)

// IndicatorLight selects a vehicle turn indicator.
type IndicatorLight int

const (
	IndicatorLeft  IndicatorLight = 1
	IndicatorRight IndicatorLight = 0
)

// VehicleSeat identifies a seat index inside a vehicle.
type VehicleSeat int

const (
	SeatDriver    VehicleSeat = -1
	SeatPassenger VehicleSeat = 0
	SeatLeftRear  VehicleSeat = 1
	SeatRightRear VehicleSeat = 2
)

// Vehicle is a handle to a vehicle.
type Vehicle struct {
	Entity
}

// NewVehicle wraps an engine vehicle handle.
func NewVehicle(inv native.Invoker, handle int) Vehicle {
	return Vehicle{Entity: NewEntity(inv, handle)}
}

// Speed returns the vehicle's scalar speed in meters per second.
func (v Vehicle) Speed() float32 {
	return v.inv.Float(native.GetEntitySpeed, v.Handle)
}

// SteeringAngle returns the current steering input in degrees, negative
// when steering right.
func (v Vehicle) SteeringAngle() float32 {
	return v.inv.Float(native.GetVehicleSteeringAngle, v.Handle)
}

// SetIndicator switches one turn indicator on or off.
func (v Vehicle) SetIndicator(light IndicatorLight, on bool) {
	v.inv.Void(native.SetVehicleIndicatorLights, v.Handle, int(light), on)
}

// IsEngineRunning reports whether the engine is on.
func (v Vehicle) IsEngineRunning() bool {
	return v.inv.Bool(native.GetIsVehicleEngineRunning, v.Handle)
}

// SetEngineOn starts or stops the engine.
func (v Vehicle) SetEngineOn(on bool) {
	v.inv.Void(native.SetVehicleEngineOn, v.Handle, on, true, false)
}
