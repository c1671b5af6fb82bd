package factory

import (
	"github.com/mlinden4/cs181g-unit3/archetypes"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProgress spawns the state machine, placed at geometry g.
func CreateProgress(ecs *ecs.ECS, g progress.Geometry) (*donburi.Entry, error) {
	machine, err := progress.NewMachine(cfg.Progress.Stages, cfg.Progress.Start)
	if err != nil {
		return nil, err
	}
	if g != cfg.Progress.Start {
		if err := machine.Restore(g); err != nil {
			return nil, err
		}
	}

	entry := archetypes.Progress.Spawn(ecs)
	components.Progress.SetValue(entry, components.ProgressData{
		Machine:         machine,
		PendingMinigame: progress.ModePlatforming,
	})
	return entry, nil
}
