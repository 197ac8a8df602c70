package world

import (
	"github.com/Tivertoni/scripthookvdotnet/internal/native"
)

// Player accesses the local player's state.
type Player struct {
	inv native.Invoker
}

// NewPlayer wraps the local player.
func NewPlayer(inv native.Invoker) Player {
	return Player{inv: inv}
}

// Ped returns the ped the player currently controls.
func (p Player) Ped() Ped {
	return NewPed(p.inv, p.inv.Int(native.PlayerPedID))
}
