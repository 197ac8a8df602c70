// Package world wraps native entity handles in typed bindings. The wrappers
// hold no state of their own; every accessor is a call through the Invoker.
package world

import (
	"github.com/Tivertoni/scripthookvdotnet/internal/native"
	"github.com/Tivertoni/scripthookvdotnet/internal/vmath"
)

// Entity is a handle to any world object the engine tracks.
type Entity struct {
	Handle int
	inv    native.Invoker
}

// NewEntity wraps an engine handle.
func NewEntity(inv native.Invoker, handle int) Entity {
	return Entity{Handle: handle, inv: inv}
}

// Position returns the entity's world position.
func (e Entity) Position() vmath.Vector3 {
	return e.inv.Vector(native.GetEntityCoords, e.Handle, true).Vec3()
}

// SetPosition teleports the entity.
func (e Entity) SetPosition(pos vmath.Vector3) {
	e.inv.Void(native.SetEntityCoords, e.Handle, pos.X, pos.Y, pos.Z, false, false, false, true)
}

// Heading returns the entity's heading in degrees.
func (e Entity) Heading() float32 {
	return e.inv.Float(native.GetEntityHeading, e.Handle)
}

// SetHeading sets the entity's heading in degrees.
func (e Entity) SetHeading(h float32) {
	e.inv.Void(native.SetEntityHeading, e.Handle, h)
}

// ForwardVector returns the entity's facing direction.
func (e Entity) ForwardVector() vmath.Vector3 {
	return e.inv.Vector(native.GetEntityForwardVector, e.Handle).Vec3()
}

// Velocity returns the entity's velocity.
func (e Entity) Velocity() vmath.Vector3 {
	return e.inv.Vector(native.GetEntityVelocity, e.Handle).Vec3()
}

// SetVelocity sets the entity's velocity.
func (e Entity) SetVelocity(v vmath.Vector3) {
	e.inv.Void(native.SetEntityVelocity, e.Handle, v.X, v.Y, v.Z)
}

// ApplyForce pushes the entity with a world-space force.
func (e Entity) ApplyForce(force vmath.Vector3) {
	e.inv.Void(native.ApplyForceToEntity, e.Handle, 1,
		force.X, force.Y, force.Z, 0, 0, 0, 0, false, true, true, false, true)
}

// Exists reports whether the handle still refers to a live entity.
func (e Entity) Exists() bool {
	return e.inv.Bool(native.DoesEntityExist, e.Handle)
}

// Delete removes the entity from the world.
func (e Entity) Delete() {
	e.inv.Void(native.DeleteEntity, e.Handle)
}
