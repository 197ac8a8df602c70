package scripts

import (
	"github.com/Tivertoni/scripthookvdotnet/internal/script"
	"github.com/Tivertoni/scripthookvdotnet/internal/vmath"
	"github.com/Tivertoni/scripthookvdotnet/internal/world"
)

// Turn rate in degrees per tick above which the indicators engage.
const indicatorThreshold = 0.35

// IndicatorScript switches the turn indicators automatically from the
// vehicle's actual turn rate, measured as the signed angle between
// successive forward vectors around the world up axis.
type IndicatorScript struct {
	script.Base
	env         script.Env
	player      world.Player
	lastForward vmath.Vector3
	hasForward  bool
	leftOn      bool
	rightOn     bool
}

func init() {
	script.Register("Indicators", func(env script.Env) script.Script {
		return &IndicatorScript{env: env}
	})
}

func (s *IndicatorScript) Name() string { return "Indicators" }

func (s *IndicatorScript) Start() {
	s.player = world.NewPlayer(s.env.Invoker)
}

func (s *IndicatorScript) Tick() {
	ped := s.player.Ped()
	if !ped.IsInVehicle() {
		s.hasForward = false
		return
	}

	veh := ped.CurrentVehicle()
	forward := veh.ForwardVector()
	if !s.hasForward {
		s.lastForward = forward
		s.hasForward = true
		return
	}

	// Positive turn rate is a left turn in the engine frame.
	turnRate := vmath.SignedAngle(s.lastForward, forward, vmath.WorldUp())
	s.lastForward = forward

	s.setIndicators(veh, turnRate > indicatorThreshold, turnRate < -indicatorThreshold)
}

func (s *IndicatorScript) setIndicators(veh world.Vehicle, left, right bool) {
	if left != s.leftOn {
		veh.SetIndicator(world.IndicatorLeft, left)
		s.leftOn = left
	}
	if right != s.rightOn {
		veh.SetIndicator(world.IndicatorRight, right)
		s.rightOn = right
	}
}

func (s *IndicatorScript) Abort() {
	if !s.leftOn && !s.rightOn {
		return
	}
	ped := s.player.Ped()
	if ped.IsInVehicle() {
		veh := ped.CurrentVehicle()
		veh.SetIndicator(world.IndicatorLeft, false)
		veh.SetIndicator(world.IndicatorRight, false)
	}
}
