// Package scripts holds the built-in example mods. Each file registers its
// script by name from init, the same way user plugins do.
package scripts

import (
	"github.com/Tivertoni/scripthookvdotnet/internal/native"
	"github.com/Tivertoni/scripthookvdotnet/internal/script"
	"github.com/Tivertoni/scripthookvdotnet/internal/world"
)

// Holding the exit control for this many ticks shuts the vehicle down on
// the way out; a shorter press leaves the engine running.
const exitHoldTicks = 30

// VehicleExitScript reworks vehicle exits: tap to hop out with the engine
// still running, hold to park properly.
type VehicleExitScript struct {
	script.Base
	env       script.Env
	player    world.Player
	heldTicks int
}

func init() {
	script.Register("VehicleExit", func(env script.Env) script.Script {
		return &VehicleExitScript{env: env}
	})
}

func (s *VehicleExitScript) Name() string { return "VehicleExit" }

func (s *VehicleExitScript) Start() {
	s.player = world.NewPlayer(s.env.Invoker)
}

func (s *VehicleExitScript) Tick() {
	ped := s.player.Ped()
	if !ped.IsInVehicle() {
		s.heldTicks = 0
		return
	}

	if s.env.Input.IsPressed(native.ControlVehicleExit) {
		s.heldTicks++
		return
	}

	if s.heldTicks == 0 {
		return
	}

	veh := ped.CurrentVehicle()
	if s.heldTicks >= exitHoldTicks {
		ped.TaskLeaveVehicle(veh, false)
		veh.SetEngineOn(false)
		s.env.Notifier.Notify("Vehicle parked")
	} else {
		ped.TaskLeaveVehicle(veh, true)
		s.env.Notifier.Notify("Engine left running")
	}
	s.heldTicks = 0
}
