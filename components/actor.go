package components

import (
	"github.com/mlinden4/cs181g-unit3/shared/physics"
	"github.com/yohamta/donburi"
)

// ActorData is the player character. The physics actor carries position,
// velocity and animation; the rest is bookkeeping for the HUD.
type ActorData struct {
	*physics.Actor
	Deaths int
	// Horizontal input of the last tick, for facing
	LastHorz float64
	// Contacts resolved on the last tick
	LastResult physics.Result
}

var Actor = donburi.NewComponentType[ActorData]()
