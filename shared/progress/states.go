// Package progress is the level and mode state machine: which level
// geometry is loaded, whether its door is open, and whether the platformer
// or a minigame owns the tick.
package progress

import (
	"fmt"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
)

// Mode selects which update/render routine runs. Exactly one is active.
type Mode int

const (
	ModePlatforming Mode = iota
	ModeSimonSays
	ModeConnectWires
	ModeMining
)

func (m Mode) String() string {
	switch m {
	case ModePlatforming:
		return "platforming"
	case ModeSimonSays:
		return "simon-says"
	case ModeConnectWires:
		return "connect-wires"
	case ModeMining:
		return "mining"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Geometry is a physical level layout.
type Geometry int

const (
	GeometryHub Geometry = iota
	GeometryLab
	GeometryCave
	GeometryFinale
)

func (g Geometry) String() string {
	switch g {
	case GeometryHub:
		return "hub"
	case GeometryLab:
		return "lab"
	case GeometryCave:
		return "cave"
	case GeometryFinale:
		return "finale"
	}
	return fmt.Sprintf("geometry(%d)", int(g))
}

// ParseGeometry maps a geometry name back to its value.
func ParseGeometry(name string) (Geometry, bool) {
	for g := GeometryHub; g <= GeometryFinale; g++ {
		if g.String() == name {
			return g, true
		}
	}
	return GeometryHub, false
}

// DoorState is the sub-state of a geometry's door.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (d DoorState) String() string {
	if d == DoorOpen {
		return "open"
	}
	return "closed"
}

// NoLevel marks a stage without a door.
const NoLevel = -1

// Stage describes one geometry: which level resource to load for each door
// state, the minigame behind its door, and where clearing it leads.
type Stage struct {
	ClosedLevel int
	OpenLevel   int
	Minigame    Mode
	Next        Geometry
	Respawn     geom.Vec2
}

// HasDoor reports whether the stage can be opened at all.
func (s Stage) HasDoor() bool {
	return s.OpenLevel != NoLevel
}

// DefaultStages is the shipped progression. Level ids name the
// levels/Level<id> resources.
var DefaultStages = map[Geometry]Stage{
	GeometryHub:    {ClosedLevel: 0, OpenLevel: 1, Minigame: ModeSimonSays, Next: GeometryLab, Respawn: geom.Vec2{X: 160, Y: 60}},
	GeometryLab:    {ClosedLevel: 2, OpenLevel: 3, Minigame: ModeConnectWires, Next: GeometryCave, Respawn: geom.Vec2{X: 48, Y: 60}},
	GeometryCave:   {ClosedLevel: 4, OpenLevel: 5, Minigame: ModeMining, Next: GeometryFinale, Respawn: geom.Vec2{X: 48, Y: 60}},
	GeometryFinale: {ClosedLevel: 6, OpenLevel: NoLevel, Next: GeometryFinale, Respawn: geom.Vec2{X: 48, Y: 60}},
}

// State is the composite machine state.
type State struct {
	Mode     Mode
	Geometry Geometry
	Door     DoorState
}

func (s State) String() string {
	return fmt.Sprintf("%s/%s/%s", s.Mode, s.Geometry, s.Door)
}
