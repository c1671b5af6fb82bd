package systems

import (
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActor applies one tick of movement input to the player.
// Must run AFTER UpdateInput and BEFORE UpdateCollision.
func UpdateActor(ecs *ecs.ECS) {
	entry, ok := components.Actor.First(ecs.World)
	if !ok {
		return
	}
	actor := components.Actor.Get(entry)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionRespawn).JustPressed {
		actor.Die()
		actor.Anim.Restart()
		return
	}

	horz := axis(input, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	vert := 0.0
	if input.Current[cfg.ActionJump] {
		vert = 1
	}

	if actor.Move(horz, vert) {
		PlaySFX(ecs, cfg.SoundJump)
	}
	if horz != 0 {
		actor.LastHorz = horz
	}
}
