package systems

import (
	"github.com/charmbracelet/log"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollision pushes the actor out of the level's tiles and handles
// lethal contacts.
func UpdateCollision(ecs *ecs.ECS) {
	actorEntry, ok := components.Actor.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	actor := components.Actor.Get(actorEntry)
	level := components.Level.Get(levelEntry)
	if level.Current == nil {
		return
	}

	resolver := physics.NewResolver(cfg.Collision.Steps, cfg.Actor.Hitbox)
	res := resolver.Resolve(actor.Actor, level.Current)
	actor.LastResult = res

	if res.Died {
		actor.Deaths++
		actor.Anim.Restart()
		PlaySFX(ecs, cfg.SoundDeath)
		log.Debug("Actor died", "level", level.Current.ID, "deaths", actor.Deaths)
	}
}
