package scripts

import (
	"fmt"
	"time"

	"github.com/Tivertoni/scripthookvdotnet/internal/script"
	"github.com/Tivertoni/scripthookvdotnet/internal/world"
)

const (
	troupeSize     = 4
	troupeModel    = 0x9C9EFFD8 // generic street ped
	spawnRadius    = 10.0
	patrolRadius   = 8.0
	patrolInterval = 5 * time.Second
	walkSpeed      = 1.0
)

// PedPatrolScript spawns a small troupe of AI peds around the player and
// periodically routes each one to a fresh random point on a circle around
// the player's current position.
type PedPatrolScript struct {
	script.Base
	env    script.Env
	player world.Player
	troupe []world.Ped
}

func init() {
	script.Register("PedPatrol", func(env script.Env) script.Script {
		return &PedPatrolScript{env: env}
	})
}

func (s *PedPatrolScript) Name() string { return "PedPatrol" }

func (s *PedPatrolScript) Start() {
	s.player = world.NewPlayer(s.env.Invoker)
	center := s.player.Ped().Position()

	for i := 0; i < troupeSize; i++ {
		spawn := center.Around(spawnRadius)
		// Face the player on spawn.
		heading := center.Sub(spawn).ToHeading()
		ped := world.CreatePed(s.env.Invoker, troupeModel, spawn, heading)
		s.troupe = append(s.troupe, ped)
	}
	s.env.Notifier.Notify(fmt.Sprintf("Patrol of %d deployed", troupeSize))
}

func (s *PedPatrolScript) Tick() {
	center := s.player.Ped().Position()
	for _, ped := range s.troupe {
		if !ped.Exists() {
			continue
		}
		ped.TaskGoTo(center.Around(patrolRadius), walkSpeed)
	}
	s.Wait(patrolInterval)
}

func (s *PedPatrolScript) Abort() {
	for _, ped := range s.troupe {
		if ped.Exists() {
			ped.Delete()
		}
	}
	s.troupe = nil
}
