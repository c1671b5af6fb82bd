package components

import (
	"github.com/mlinden4/cs181g-unit3/shared/minigame"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/yohamta/donburi"
)

// MinigameOutcome is how a minigame session ended.
type MinigameOutcome int

const (
	OutcomePlaying MinigameOutcome = iota
	OutcomeWon
	OutcomeQuit
)

// MinigameData is the active minigame of a minigame scene.
type MinigameData struct {
	Game    minigame.Game
	Mode    progress.Mode
	Ticks   int
	Outcome MinigameOutcome
}

var Minigame = donburi.NewComponentType[MinigameData]()
