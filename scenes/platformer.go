package scenes

import (
	"image/color"
	"math/rand/v2"
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

// RunOptions select how a run starts.
type RunOptions struct {
	Seed uint64
	// Start is the stage a new run begins in
	Start progress.Geometry
	// Continue resumes a saved run instead of starting at Start
	Continue *systems.SavedProgress
}

// PlatformerScene is the platforming half of a run. It stays alive, frozen,
// while a minigame scene owns the tick.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         RunOptions
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene for a run
func NewPlatformerScene(sc SceneChanger, opts RunOptions) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, opts: opts}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if mode, ok := systems.TakePendingMinigame(ps.ecs); ok {
		ps.sceneChanger.ChangeScene(NewMinigameScene(ps.sceneChanger, ps, mode))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so sounds queued last tick play)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateReload)

	// input -> actor physics -> resolver -> doors and state machine
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSession))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateActor))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollision))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateProgress))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActor)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ps.ecs = ecs

	factory.CreateSession(ps.ecs, rand.New(rand.NewPCG(ps.opts.Seed, ps.opts.Seed^0x9e3779b97f4a7c15)))

	start := ps.opts.Start
	if ps.opts.Continue != nil {
		if g, ok := ps.opts.Continue.Stage(); ok {
			start = g
		}
	}

	progEntry, err := factory.CreateProgress(ps.ecs, start)
	if err != nil {
		log.Fatal("Could not create stage table", "err", err)
	}
	machine := components.Progress.Get(progEntry).Machine

	if _, err := factory.CreateLevel(ps.ecs, machine.LevelID()); err != nil {
		log.Fatal("Could not load level", "id", machine.LevelID(), "err", err)
	}

	// A fresh run starts mid-screen; later stages and saves start at the
	// stage respawn.
	respawn := machine.Stage().Respawn
	spawn := respawn
	if start == cfg.Progress.Start && ps.opts.Continue == nil {
		spawn = cfg.Actor.Start
	}
	if ps.opts.Continue != nil {
		respawn = ps.opts.Continue.Respawn()
		spawn = respawn
	}

	actor := factory.CreateActor(ps.ecs, spawn, respawn)
	if ps.opts.Continue != nil {
		components.Actor.Get(actor).Deaths = ps.opts.Continue.Deaths
	}

	log.Info("Run started", "stage", start, "level", machine.LevelID(), "seed", ps.opts.Seed)
}
