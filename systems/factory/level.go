package factory

import (
	"github.com/charmbracelet/log"
	"github.com/mlinden4/cs181g-unit3/archetypes"
	"github.com/mlinden4/cs181g-unit3/assets"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/leveldata"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity and loads level id into it.
func CreateLevel(ecs *ecs.ECS, id int) (*donburi.Entry, error) {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{})
	if err := LoadLevel(ecs, id); err != nil {
		return nil, err
	}
	return level, nil
}

// LoadLevel replaces the current level with level id and rebuilds its door
// zones. On error the current level is left untouched.
func LoadLevel(ecs *ecs.ECS, id int) error {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		entry = archetypes.Level.Spawn(ecs)
	}

	lvl, err := assets.LoadLevel(id)
	if err != nil {
		return err
	}

	data := components.Level.Get(entry)
	data.Current = lvl
	data.Doors = NewDoorZones(lvl)
	data.InDoor = false
	data.Loads++

	log.Debug("Level loaded", "id", id, "tiles", len(lvl.Tiles), "doors", len(lvl.Doors))
	return nil
}

// NewDoorZones indexes the door tiles of lvl over the play area.
func NewDoorZones(lvl *leveldata.Level) *progress.DoorZones {
	return progress.NewDoorZones(
		lvl.DoorBoxes(),
		float64(cfg.C.Width),
		float64(cfg.C.Height),
		cfg.Level.DoorCellSize,
	)
}
