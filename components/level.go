package components

import (
	"github.com/mlinden4/cs181g-unit3/shared/leveldata"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *leveldata.Level
	Doors   *progress.DoorZones
	// InDoor is the door test result of the last platforming tick
	InDoor bool
	// Loads counts level loads, hot reloads included
	Loads int
}

var Level = donburi.NewComponentType[LevelData]()
