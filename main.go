// escape is a small platformer whose doors lead into minigames.
//
// Usage:
//
//	escape                 - Play
//	escape levels          - Parse every level and print its tile and door counts
//	escape records         - Show minigame records
//
// Global flags:
//
//	--seed <value>   - RNG seed for minigames (0 = random based on time)
//	--config <path>  - Tuning overrides (YAML)
//	--db <path>      - Records database path
//	--debug          - Debug logging and collision overlay
//	--level <stage>  - Start in hub, lab, cave or finale
//	--watch <dir>    - Load levels from dir/levels and reload them on change
//	--no-save        - Do not read or write the save slot
package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/fonts"
	"github.com/mlinden4/cs181g-unit3/scenes"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/mlinden4/cs181g-unit3/systems"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Global flags
	flagSeed   uint64
	flagConfig string
	flagDBPath string
	flagDebug  bool
	flagLevel  string
	flagWatch  string
	flagNoSave bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current tick
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(opts scenes.RunOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, opts)
	} else {
		g.scene = scenes.NewTitleScene(g, opts)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "escape",
	Short: "Escape the Facility - a platformer with minigames behind its doors",
	Long: `Escape the Facility is a small platformer. Walk into a door to open it,
press SPACE to enter, and solve the minigame behind it to reach the next stage.

Controls:
  Arrows/WASD  move and jump
  SPACE        enter an open door
  R            respawn
  L            restart from the hub
  P            pause
  F3           collision overlay

Examples:
  escape
  escape --level cave --seed 42
  escape --watch ./assets
  escape records`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision overlay")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Stage to start in: hub, lab, cave or finale (skips the title menu)")
	rootCmd.Flags().StringVar(&flagWatch, "watch", "", "Load levels from <dir>/levels and reload them when they change")
	rootCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not read or write the save slot")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
}

// setup configures logging and applies tuning overrides for every command.
func setup(cmd *cobra.Command, args []string) error {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "escape",
	}))
	if flagDebug {
		log.SetLevel(log.DebugLevel)
		config.Debug.Enabled = true
	}

	settings, source, err := config.LoadSettings(flagConfig)
	if err != nil {
		return err
	}
	settings.Apply()
	log.Debug("Settings loaded", "source", source)

	if flagDBPath != "" {
		config.Records.Path = flagDBPath
	}
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	opts := scenes.RunOptions{
		Seed:  flagSeed,
		Start: config.Progress.Start,
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if flagLevel != "" {
		g, ok := progress.ParseGeometry(flagLevel)
		if !ok {
			return fmt.Errorf("unknown stage %q (want hub, lab, cave or finale)", flagLevel)
		}
		opts.Start = g
		config.Debug.SkipMenu = true
	}
	if flagNoSave {
		config.Save.Enabled = false
	}

	if err := loadFonts(); err != nil {
		return err
	}

	if flagWatch != "" {
		if err := systems.StartLevelWatcher(flagWatch); err != nil {
			return fmt.Errorf("watch %s: %w", flagWatch, err)
		}
		defer systems.StopLevelWatcher()
	}

	if err := systems.InitPersistence(); err != nil {
		log.Warn("Could not initialize persistence", "err", err)
	}
	if err := systems.InitRecords(config.Records.Path); err != nil {
		log.Warn("Could not open records, playing without them", "err", err)
	}
	defer systems.CloseRecords()

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 12); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, config.HUD.FontSize); err != nil {
		return err
	}
	return fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 20)
}
