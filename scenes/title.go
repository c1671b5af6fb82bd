package scenes

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/systems"
	"github.com/mlinden4/cs181g-unit3/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// TitleScene displays the title menu using ebitenui
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	opts         RunOptions
	once         sync.Once

	next func()
}

// NewTitleScene creates the title scene; opts seed the run it starts.
func NewTitleScene(sc SceneChanger, opts RunOptions) *TitleScene {
	return &TitleScene{sceneChanger: sc, opts: opts}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	// Update ECS for audio
	ts.ecs.Update()
	ts.titleUI.Update()

	if ts.next != nil {
		next := ts.next
		ts.next = nil
		next()
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.titleUI = ui.NewTitleUI(
		cfg.C.Title,
		systems.HasSaveGame(),
		func() { ts.next = ts.newGame },
		func() { ts.next = ts.continueGame },
		func() { ts.next = ts.sceneChanger.Quit },
	)
}

func (ts *TitleScene) newGame() {
	if err := systems.ClearGameProgress(); err != nil {
		log.Warn("Could not clear saved progress", "err", err)
	}
	opts := ts.opts
	opts.Continue = nil
	ts.sceneChanger.ChangeScene(NewPlatformerScene(ts.sceneChanger, opts))
}

func (ts *TitleScene) continueGame() {
	saved, err := systems.LoadProgress()
	if err != nil || saved == nil {
		ts.titleUI.SetStatus("No saved game")
		return
	}
	opts := ts.opts
	opts.Continue = saved
	ts.sceneChanger.ChangeScene(NewPlatformerScene(ts.sceneChanger, opts))
}
