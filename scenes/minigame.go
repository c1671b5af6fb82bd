package scenes

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/mlinden4/cs181g-unit3/systems"
	"github.com/mlinden4/cs181g-unit3/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MinigameScene runs the puzzle behind a door, then hands its outcome back
// to the platformer that opened it.
type MinigameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	parent       *PlatformerScene
	mode         progress.Mode
	once         sync.Once
}

// NewMinigameScene creates a minigame scene returning to parent
func NewMinigameScene(sc SceneChanger, parent *PlatformerScene, mode progress.Mode) *MinigameScene {
	return &MinigameScene{sceneChanger: sc, parent: parent, mode: mode}
}

func (ms *MinigameScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	data, ok := systems.MinigameOutcome(ms.ecs)
	if !ok {
		// No minigame could be built; give the door back.
		ms.finish(false, 0)
		return
	}
	if data.Outcome != components.OutcomePlaying {
		ms.finish(data.Outcome == components.OutcomeWon, data.Ticks)
	}
}

func (ms *MinigameScene) finish(won bool, ticks int) {
	systems.FinishMinigame(ms.parent.ecs, ms.mode, won, ticks)
	ms.sceneChanger.ChangeScene(ms.parent)
}

func (ms *MinigameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MinigameScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMinigame))

	ecs.AddRenderer(cfg.Default, systems.DrawMinigame)
	ecs.AddRenderer(cfg.Default, systems.DrawMinigameHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ms.ecs = ecs

	if _, err := factory.CreateMinigame(ms.ecs, ms.mode, systems.SessionRand(ms.parent.ecs)); err != nil {
		log.Error("Could not start minigame", "mode", ms.mode, "err", err)
		return
	}
	log.Info("Minigame started", "mode", ms.mode)
}
