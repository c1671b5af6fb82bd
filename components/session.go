package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// SessionData holds per-run state shared by every system of a scene.
type SessionData struct {
	Rand *rand.Rand
	// Ticks since the run started, paused ticks excluded
	Ticks int
}

var Session = donburi.NewComponentType[SessionData]()
