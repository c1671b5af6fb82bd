package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/minigame"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/yohamta/donburi/ecs"
)

// exitActions is the key that abandons each minigame.
var exitActions = map[progress.Mode]cfg.ActionID{
	progress.ModeSimonSays:    cfg.ActionExitMinigame,
	progress.ModeConnectWires: cfg.ActionCancel,
	progress.ModeMining:       cfg.ActionExitMinigame,
}

// UpdateMinigame runs one tick of the active minigame and latches its
// outcome once it completes or is abandoned.
func UpdateMinigame(ecs *ecs.ECS) {
	entry, ok := components.Minigame.First(ecs.World)
	if !ok {
		return
	}
	mg := components.Minigame.Get(entry)
	if mg.Outcome != components.OutcomePlaying {
		return
	}
	input := getOrCreateInput(ecs)

	in := minigame.Input{
		Pointer: input.Pointer,
		Click:   input.Click,
		Exit:    GetAction(input, exitActions[mg.Mode]).JustPressed,
		DT:      1 / float32(cfg.C.TPS),
	}
	if in.Click {
		PlaySFX(ecs, cfg.SoundClick)
	}

	mg.Game.Update(in)
	mg.Ticks++

	switch {
	case mg.Game.Completed():
		mg.Game.ClearCompleted()
		mg.Outcome = components.OutcomeWon
	case mg.Game.Quit():
		mg.Outcome = components.OutcomeQuit
	}
}

// MinigameOutcome returns the latched outcome of the active minigame.
func MinigameOutcome(ecs *ecs.ECS) (components.MinigameData, bool) {
	entry, ok := components.Minigame.First(ecs.World)
	if !ok {
		return components.MinigameData{}, false
	}
	return *components.Minigame.Get(entry), true
}

// DrawMinigame renders the active minigame's sprites.
func DrawMinigame(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.MinigameBackground)

	entry, ok := components.Minigame.First(ecs.World)
	if !ok {
		return
	}
	DrawSprites(screen, components.Minigame.Get(entry).Game.Sprites())
}
