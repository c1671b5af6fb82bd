package factory

import (
	"github.com/mlinden4/cs181g-unit3/archetypes"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor spawns the player at start, respawning at respawn.
func CreateActor(ecs *ecs.ECS, start, respawn geom.Vec2) *donburi.Entry {
	actor := archetypes.Actor.Spawn(ecs)
	components.Actor.SetValue(actor, components.ActorData{
		Actor: physics.NewActor(start, respawn, cfg.Physics, cfg.NewActorAnimator()),
	})
	return actor
}
