package factory

import (
	"math/rand/v2"

	"github.com/mlinden4/cs181g-unit3/archetypes"
	"github.com/mlinden4/cs181g-unit3/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{Rand: rng})
	return session
}
