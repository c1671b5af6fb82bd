package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/fonts"
	"github.com/mlinden4/cs181g-unit3/shared/minigame"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const finaleMessage = "You escaped the facility!"

// DrawHUD renders the stage name, death count and door hint.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	prog := GetProgress(ecs)
	if prog == nil {
		return
	}
	state := prog.Machine.State()
	face := fonts.Small.Get()

	deaths := 0
	if entry, ok := components.Actor.First(ecs.World); ok {
		deaths = components.Actor.Get(entry).Deaths
	}

	lines := []string{
		fmt.Sprintf("Stage: %s", state.Geometry),
		fmt.Sprintf("Deaths: %d", deaths),
	}
	drawPanel(screen, face, lines, cfg.HUD.Margin, cfg.HUD.Margin)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if !prog.Machine.Stage().HasDoor() {
		drawCentered(screen, fonts.Regular.Get(), finaleMessage, width, height/2)
		return
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		if level.InDoor && state.Door == progress.DoorOpen {
			drawCentered(screen, face, cfg.HUD.DoorHint, width, height-cfg.HUD.Margin)
		}
	}
}

// DrawMinigameHUD renders the leave hint, the elapsed time and the best
// recorded time for the active minigame.
func DrawMinigameHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Minigame.First(ecs.World)
	if !ok {
		return
	}
	mg := components.Minigame.Get(entry)
	face := fonts.Small.Get()

	lines := []string{cfg.HUD.QuitHints[mg.Mode], "Time: " + formatTicks(mg.Ticks)}
	if best := BestTicks(mg.Mode); best > 0 {
		lines = append(lines, "Best: "+formatTicks(best))
	}
	if simon, ok := mg.Game.(*minigame.SimonSays); ok {
		lines = append(lines, fmt.Sprintf("Round %d/%d", len(simon.Pattern()), cfg.Minigame.SimonSays.Rounds))
	}
	if mining, ok := mg.Game.(*minigame.Mining); ok && mining.PrizeHits() > 0 {
		lines = append(lines, fmt.Sprintf("Prize hits: %d", mining.PrizeHits()))
	}
	drawPanel(screen, face, lines, cfg.HUD.Margin, cfg.HUD.Margin)
}

func formatTicks(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(cfg.C.TPS))
}

// drawPanel draws lines of text over a translucent box anchored at x, y.
func drawPanel(screen *ebiten.Image, face font.Face, lines []string, x, y float64) {
	widest := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > widest {
			widest = w
		}
	}

	pad := cfg.HUD.Margin / 2
	vector.FillRect(screen,
		float32(x-pad), float32(y-pad),
		float32(float64(widest)+2*pad), float32(float64(len(lines))*cfg.HUD.LineGap+2*pad),
		cfg.HUD.BgColor, false)

	for i, line := range lines {
		baseline := y + float64(i+1)*cfg.HUD.LineGap - 2
		text.Draw(screen, line, face, int(x), int(baseline), cfg.HUD.TextColor)
	}
}

// drawCentered draws str horizontally centered with its baseline at y.
func drawCentered(screen *ebiten.Image, face font.Face, str string, width, y float64) {
	w := font.MeasureString(face, str).Ceil()
	text.Draw(screen, str, face, int((width-float64(w))/2), int(y), cfg.HUD.TextColor)
}
