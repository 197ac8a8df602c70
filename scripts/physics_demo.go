package scripts

import (
	"github.com/aquilax/go-perlin"

	"github.com/Tivertoni/scripthookvdotnet/internal/native"
	"github.com/Tivertoni/scripthookvdotnet/internal/script"
	"github.com/Tivertoni/scripthookvdotnet/internal/vmath"
	"github.com/Tivertoni/scripthookvdotnet/internal/world"
)

const (
	launchForce   = 12.0
	gustForce     = 4.0
	gustTimeScale = 0.02
)

// PhysicsDemoScript launches the player's vehicle on a trigger press, then
// keeps buffeting it with a perlin-shaped crosswind while it moves. Plain
// random forces look jittery; coherent noise reads as wind.
type PhysicsDemoScript struct {
	script.Base
	env     script.Env
	player  world.Player
	noise   *perlin.Perlin
	t       float64
	gusting bool
}

func init() {
	script.Register("PhysicsDemo", func(env script.Env) script.Script {
		return &PhysicsDemoScript{
			env:   env,
			noise: perlin.NewPerlin(2, 2, 3, 1337),
		}
	})
}

func (s *PhysicsDemoScript) Name() string { return "PhysicsDemo" }

func (s *PhysicsDemoScript) Start() {
	s.player = world.NewPlayer(s.env.Invoker)
}

func (s *PhysicsDemoScript) Tick() {
	s.t += gustTimeScale
	ped := s.player.Ped()
	if !ped.IsInVehicle() {
		s.gusting = false
		return
	}
	veh := ped.CurrentVehicle()

	if s.env.Input.IsJustPressed(native.ControlContext) {
		// Launch upward with a random horizontal kick.
		kick := vmath.RandomXY().Scale(launchForce * 0.25)
		veh.ApplyForce(vmath.WorldUp().Scale(launchForce).Add(kick))
		s.gusting = true
		s.env.Notifier.Notify("Liftoff")
	}

	if !s.gusting {
		return
	}
	if veh.Speed() < 0.5 {
		s.gusting = false
		return
	}

	gust := vmath.New(
		float32(s.noise.Noise2D(s.t, 0)),
		float32(s.noise.Noise2D(s.t, 100)),
		0,
	).Scale(gustForce)
	veh.ApplyForce(gust)
}
