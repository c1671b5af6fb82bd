// Package minigame holds the rules of the puzzles behind each door. A
// minigame knows nothing about levels: it only raises its completed or
// quit flag, which the platformer polls.
package minigame

import (
	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/render"
)

// Screen is the logical play area every layout is measured against.
var Screen = geom.Vec2{X: 320, Y: 240}

// Input is one tick of player input, already mapped to world space.
type Input struct {
	Pointer geom.Vec2
	Click   bool
	Exit    bool
	// DT is the tick length in seconds.
	DT float32
}

// Game is implemented by every minigame.
type Game interface {
	Update(in Input)
	Completed() bool
	ClearCompleted()
	Quit() bool
	Sprites() []render.Sprite
}

// Flags carries the completion contract and is embedded by each game.
type Flags struct {
	completed bool
	quit      bool
}

func (f *Flags) Completed() bool { return f.completed }
func (f *Flags) ClearCompleted() { f.completed = false }
func (f *Flags) Quit() bool { return f.quit }
func (f *Flags) complete() { f.completed = true }
func (f *Flags) abandon() { f.quit = true }
func (f *Flags) finished() bool { return f.completed || f.quit }
