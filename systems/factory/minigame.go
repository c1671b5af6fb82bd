package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/mlinden4/cs181g-unit3/archetypes"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/minigame"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewMinigame builds the rules object for a minigame mode.
func NewMinigame(mode progress.Mode, rng *rand.Rand) (minigame.Game, error) {
	switch mode {
	case progress.ModeSimonSays:
		return minigame.NewSimonSays(cfg.Minigame.SimonSays, rng), nil
	case progress.ModeConnectWires:
		return minigame.NewConnectWires(), nil
	case progress.ModeMining:
		return minigame.NewMining(cfg.Minigame.Mining, rng), nil
	}
	return nil, fmt.Errorf("no minigame for mode %s", mode)
}

// CreateMinigame spawns the active minigame entity for mode.
func CreateMinigame(ecs *ecs.ECS, mode progress.Mode, rng *rand.Rand) (*donburi.Entry, error) {
	game, err := NewMinigame(mode, rng)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Minigame.Spawn(ecs)
	components.Minigame.SetValue(entry, components.MinigameData{
		Game: game,
		Mode: mode,
	})
	return entry, nil
}
