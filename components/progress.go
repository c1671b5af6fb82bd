package components

import (
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/yohamta/donburi"
)

// ProgressData wraps the level/mode state machine.
type ProgressData struct {
	Machine *progress.Machine
	// Last effect that changed something, shown by the debug overlay
	LastEffect progress.Effect
	// Set when a minigame was confirmed this tick and the scene must switch
	PendingMinigame progress.Mode
}

var Progress = donburi.NewComponentType[ProgressData]()
