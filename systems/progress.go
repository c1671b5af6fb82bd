package systems

import (
	"github.com/charmbracelet/log"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/mlinden4/cs181g-unit3/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgress tests the door zones, feeds this tick's signals to the
// state machine and applies the resulting effect.
// Must run AFTER UpdateCollision.
func UpdateProgress(ecs *ecs.ECS) {
	prog := GetProgress(ecs)
	if prog == nil {
		return
	}
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
	input := getOrCreateInput(ecs)

	level.InDoor = level.Doors != nil && level.Doors.InDoor(actor.Box(cfg.Actor.Hitbox))

	eff, err := prog.Machine.Step(progress.Signals{
		InDoor:  level.InDoor,
		Confirm: GetAction(input, cfg.ActionConfirm).JustPressed,
		Reset:   GetAction(input, cfg.ActionReset).JustPressed,
	})
	if err != nil {
		log.Warn("Transition rejected", "err", err)
		return
	}
	ApplyEffect(ecs, eff)
}

// ApplyEffect carries out a state machine decision: level reload, actor
// respawn, sounds, saving, and flagging a minigame for the scene to start.
func ApplyEffect(ecs *ecs.ECS, eff progress.Effect) {
	prog := GetProgress(ecs)
	if prog == nil {
		return
	}

	if eff.Reload {
		if err := factory.LoadLevel(ecs, eff.LevelID); err != nil {
			log.Fatal("Could not load level", "id", eff.LevelID, "err", err)
		}
	}

	if actorEntry, ok := components.Actor.First(ecs.World); ok {
		actor := components.Actor.Get(actorEntry)
		if eff.Respawn != nil {
			actor.Respawn = *eff.Respawn
		}
		if eff.ResetActor {
			actor.Die()
			actor.Anim.Restart()
		}
	}

	if eff.DoorOpened {
		PlaySFX(ecs, cfg.SoundDoorOpen)
	}
	if eff.DoorConfirmed {
		PlaySFX(ecs, cfg.SoundDoorConfirm)
		prog.PendingMinigame = eff.Mode
	}
	if eff.StageCleared {
		PlaySFX(ecs, cfg.SoundMinigameWon)
		SaveCurrentProgress(ecs)
	}

	if eff.Reload || eff.DoorConfirmed || eff.StageCleared {
		prog.LastEffect = eff
		log.Info("State changed", "state", prog.Machine.State(), "level", eff.LevelID)
	}
}

// FinishMinigame reports a minigame outcome to the platformer's state
// machine and records the attempt.
func FinishMinigame(ecs *ecs.ECS, mode progress.Mode, won bool, ticks int) {
	prog := GetProgress(ecs)
	if prog == nil {
		return
	}
	stage := prog.Machine.State().Geometry

	eff, err := prog.Machine.Finish(won)
	if err != nil {
		log.Error("Could not finish minigame", "mode", mode, "err", err)
		return
	}
	log.Info("Minigame finished", "mode", mode, "won", won, "ticks", ticks)

	RecordMinigame(mode, stage, won, ticks)
	ApplyEffect(ecs, eff)
}

// TakePendingMinigame returns the minigame confirmed this tick, if any, and
// clears it.
func TakePendingMinigame(ecs *ecs.ECS) (progress.Mode, bool) {
	prog := GetProgress(ecs)
	if prog == nil || prog.PendingMinigame == progress.ModePlatforming {
		return progress.ModePlatforming, false
	}
	mode := prog.PendingMinigame
	prog.PendingMinigame = progress.ModePlatforming
	return mode, true
}

// GetProgress returns the state machine component, or nil before the scene
// created it.
func GetProgress(ecs *ecs.ECS) *components.ProgressData {
	entry, ok := components.Progress.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Progress.Get(entry)
}
