package systems

import (
	"math/rand/v2"

	"github.com/mlinden4/cs181g-unit3/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession counts unpaused ticks.
func UpdateSession(ecs *ecs.ECS) {
	if s := GetSession(ecs); s != nil {
		s.Ticks++
	}
}

// GetSession returns the session component, or nil before it is created.
func GetSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// SessionRand returns the run's random source.
func SessionRand(ecs *ecs.ECS) *rand.Rand {
	if s := GetSession(ecs); s != nil && s.Rand != nil {
		return s.Rand
	}
	return rand.New(rand.NewPCG(0, 0))
}
