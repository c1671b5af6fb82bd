package config

import (
	"image/color"
	"time"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/leveldata"
	"github.com/mlinden4/cs181g-unit3/shared/minigame"
	"github.com/mlinden4/cs181g-unit3/shared/physics"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
)

// Config holds general window configuration
type Config struct {
	Title string
	// Logical play area; the window is Width*Scale by Height*Scale.
	Width  int
	Height int
	Scale  int
	TPS    int
}

// ActorConfig contains player placement and hitbox values
type ActorConfig struct {
	Start    geom.Vec2
	Hitbox   geom.Vec2
	DrawSize float64
}

// CollisionConfig contains resolver tuning
type CollisionConfig struct {
	Steps int
}

// LevelConfig describes the level grid and how tiles are classified
type LevelConfig struct {
	Grid       leveldata.Grid
	Classifier leveldata.Classifier
	// Cell size of the door trigger space
	DoorCellSize int
}

// ProgressConfig contains the stage table and the stage a new game starts in
type ProgressConfig struct {
	Stages map[progress.Geometry]progress.Stage
	Start  progress.Geometry
}

// MinigameConfig contains per-minigame tuning
type MinigameConfig struct {
	SimonSays minigame.SimonSaysConfig
	Mining    minigame.MiningConfig
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	FontSize  float64
	Margin    float64
	LineGap   float64
	TextColor color.RGBA
	BgColor   color.RGBA
	DoorHint  string
	QuitHints map[progress.Mode]string
}

// PaletteConfig maps things to draw to flat colors, since the game draws
// filled rectangles in place of sprite sheets.
type PaletteConfig struct {
	Background         color.RGBA
	MinigameBackground color.RGBA
	Kinds              map[leveldata.Kind]color.RGBA
	Actor              color.RGBA
	ActorAirborne      color.RGBA
	// Minigame regions by sheet cell; unknown cells use Fallback.
	Regions  map[RegionKey]color.RGBA
	Fallback color.RGBA
}

// RegionKey is a sheet cell, used as a palette key.
type RegionKey struct {
	X, Y int
}

// SaveConfig contains gdata save slot configuration
type SaveConfig struct {
	Enabled bool
	AppName string
	Key     string
}

// RecordsConfig contains minigame record storage configuration
type RecordsConfig struct {
	Path string
	// Rows shown by the records command
	Limit int
}

// WatchConfig contains level hot reload configuration
type WatchConfig struct {
	Dir      string
	Debounce time.Duration
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Enabled     bool
	SkipMenu    bool
	TileColor   color.RGBA
	DoorColor   color.RGBA
	HitboxColor color.RGBA
	TextColor   color.RGBA
}

// Global configuration instances
var C *Config
var Physics physics.Params
var Actor ActorConfig
var Collision CollisionConfig
var Level LevelConfig
var Progress ProgressConfig
var Minigame MinigameConfig
var HUD HUDConfig
var Palette PaletteConfig
var Save SaveConfig
var Records RecordsConfig
var Watch WatchConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Pink         = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Title:  "Escape the Facility",
		Width:  320,
		Height: 240,
		Scale:  3,
		TPS:    60,
	}

	Physics = physics.DefaultParams

	Actor = ActorConfig{
		Start:    geom.Vec2{X: 160, Y: 120},
		Hitbox:   geom.Vec2{X: 16, Y: 16},
		DrawSize: 16,
	}

	Collision = CollisionConfig{
		Steps: 3,
	}

	Level = LevelConfig{
		Grid:         leveldata.DefaultGrid,
		Classifier:   leveldata.DefaultClassifier,
		DoorCellSize: 32,
	}

	Progress = ProgressConfig{
		Stages: progress.DefaultStages,
		Start:  progress.GeometryHub,
	}

	Minigame = MinigameConfig{
		SimonSays: minigame.DefaultSimonSays,
		// Ticks ignored after each click so one press is one hit
		Mining: minigame.MiningConfig{CooldownTicks: 6},
	}

	HUD = HUDConfig{
		FontSize:  8,
		Margin:    4,
		LineGap:   10,
		TextColor: White,
		BgColor:   BlackOverlay,
		DoorHint:  "SPACE to enter",
		QuitHints: map[progress.Mode]string{
			progress.ModeSimonSays:    "Repeat the pattern - S to leave",
			progress.ModeConnectWires: "Paint each wire - ESC to leave",
			progress.ModeMining:       "Dig out the prize - S to leave",
		},
	}

	Palette = PaletteConfig{
		Background:         color.RGBA{R: 15, G: 25, B: 50, A: 255},
		MinigameBackground: color.RGBA{R: 20, G: 20, B: 28, A: 255},
		Kinds: map[leveldata.Kind]color.RGBA{
			leveldata.KindSolid:      Gray,
			leveldata.KindHalfTop:    color.RGBA{R: 150, G: 120, B: 90, A: 255},
			leveldata.KindHalfBottom: color.RGBA{R: 150, G: 120, B: 90, A: 255},
			leveldata.KindDoor:       Orange,
			leveldata.KindLethal:     Red,
			leveldata.KindDecorative: color.RGBA{R: 35, G: 45, B: 70, A: 255},
		},
		Actor:         LightBlue,
		ActorAirborne: color.RGBA{R: 160, G: 210, B: 255, A: 255},
		Regions: map[RegionKey]color.RGBA{
			// Simon Says knobs
			{1, 0}: Red,
			{2, 2}: Blue,
			{0, 2}: Green,
			{2, 0}: Yellow,
			// Connect Wires swatches and endpoints
			{10, 4}: Pink,
			{9, 5}:  Green,
			{11, 4}: Blue,
			{11, 5}: Orange,
			{10, 5}: Purple,
			// Connect Wires painted squares
			{10, 2}: color.RGBA{R: 200, G: 80, B: 140, A: 255},
			{9, 3}:  color.RGBA{R: 0, G: 190, B: 60, A: 255},
			{11, 2}: color.RGBA{R: 0, G: 80, B: 200, A: 255},
			{11, 3}: color.RGBA{R: 210, G: 110, B: 0, A: 255},
			{10, 3}: color.RGBA{R: 100, G: 0, B: 200, A: 255},
			{1, 1}:  White,
			// Mining ice stages
			{6, 11}: color.RGBA{R: 190, G: 230, B: 255, A: 255},
			{6, 12}: color.RGBA{R: 140, G: 190, B: 230, A: 255},
			{7, 12}: color.RGBA{R: 90, G: 140, B: 190, A: 255},
			// Mining prizes
			{12, 0}: Yellow,
			{13, 1}: Pink,
			{14, 1}: Green,
			{14, 2}: Orange,
			{14, 5}: Purple,
		},
		Fallback: Magenta,
	}

	Save = SaveConfig{
		Enabled: true,
		AppName: "escape_the_facility",
		Key:     "progress",
	}

	Records = RecordsConfig{
		Path:  "~/.cs181g/records.db",
		Limit: 10,
	}

	Watch = WatchConfig{
		Debounce: 100 * time.Millisecond,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:     false,
		SkipMenu:    false,
		TileColor:   color.RGBA{R: 0, G: 255, B: 0, A: 255},
		DoorColor:   color.RGBA{R: 255, G: 200, B: 0, A: 255},
		HitboxColor: color.RGBA{R: 255, G: 0, B: 255, A: 255},
		TextColor:   White,
	}
}
