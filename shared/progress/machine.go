package progress

import (
	"fmt"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
)

// Event drives a transition.
type Event int

const (
	EventEnterDoor Event = iota
	EventLeaveDoor
	EventConfirm
	EventMinigameWon
	EventMinigameQuit
	EventReset
)

var eventNames = map[Event]string{
	EventEnterDoor:    "enter-door",
	EventLeaveDoor:    "leave-door",
	EventConfirm:      "confirm",
	EventMinigameWon:  "minigame-won",
	EventMinigameQuit: "minigame-quit",
	EventReset:        "reset",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// InvalidTransitionError is returned when an event has no transition from
// the current state. The state is left unchanged.
type InvalidTransitionError struct {
	State State
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("no transition for %s in state %s", e.Event, e.State)
}

// Effect tells the caller what changed.
type Effect struct {
	Reload        bool
	LevelID       int
	Mode          Mode
	Respawn       *geom.Vec2
	ResetActor    bool
	DoorOpened    bool
	DoorConfirmed bool
	StageCleared  bool
}

// Signals are the per-tick facts the machine needs from the platformer.
type Signals struct {
	InDoor  bool
	Confirm bool
	Reset   bool
}

// modeClass collapses the minigame modes so one table row covers them all.
type modeClass int

const (
	classPlatforming modeClass = iota
	classMinigame
)

func classOf(m Mode) modeClass {
	if m == ModePlatforming {
		return classPlatforming
	}
	return classMinigame
}

type transitionKey struct {
	class modeClass
	door  DoorState
	event Event
}

type action func(m *Machine) Effect

// transitions lists every legal move. Anything absent is rejected.
var transitions = map[transitionKey]action{
	{classPlatforming, DoorClosed, EventEnterDoor}: openDoor,
	{classPlatforming, DoorOpen, EventLeaveDoor}:   closeDoor,
	{classPlatforming, DoorOpen, EventConfirm}:     enterMinigame,
	{classMinigame, DoorOpen, EventMinigameWon}:    clearStage,
	{classMinigame, DoorOpen, EventMinigameQuit}:   leaveMinigame,
	{classPlatforming, DoorClosed, EventReset}:     reset,
	{classPlatforming, DoorOpen, EventReset}:       reset,
	{classMinigame, DoorOpen, EventReset}:          reset,
}

// Machine is the level/mode state machine.
type Machine struct {
	stages map[Geometry]Stage
	start  Geometry
	state  State
}

// NewMachine starts at start with its door closed, in platforming mode.
func NewMachine(stages map[Geometry]Stage, start Geometry) (*Machine, error) {
	if _, ok := stages[start]; !ok {
		return nil, fmt.Errorf("progress: no stage for %s", start)
	}
	for g, s := range stages {
		if _, ok := stages[s.Next]; !ok {
			return nil, fmt.Errorf("progress: stage %s leads to unknown %s", g, s.Next)
		}
		if s.HasDoor() && s.Minigame == ModePlatforming {
			return nil, fmt.Errorf("progress: stage %s has a door but no minigame", g)
		}
	}
	return &Machine{
		stages: stages,
		start:  start,
		state:  State{Mode: ModePlatforming, Geometry: start},
	}, nil
}

func (m *Machine) State() State { return m.state }
func (m *Machine) Stage() Stage { return m.stages[m.state.Geometry] }

// LevelID is the level resource matching the current geometry and door.
func (m *Machine) LevelID() int {
	s := m.Stage()
	if m.state.Door == DoorOpen {
		return s.OpenLevel
	}
	return s.ClosedLevel
}

// Restore jumps straight to a saved geometry with its door closed.
func (m *Machine) Restore(g Geometry) error {
	if _, ok := m.stages[g]; !ok {
		return fmt.Errorf("progress: no stage for %s", g)
	}
	m.state = State{Mode: ModePlatforming, Geometry: g}
	return nil
}

// Fire applies ev, or returns an InvalidTransitionError.
func (m *Machine) Fire(ev Event) (Effect, error) {
	key := transitionKey{class: classOf(m.state.Mode), door: m.state.Door, event: ev}
	act, ok := transitions[key]
	if !ok || (ev == EventEnterDoor && !m.Stage().HasDoor()) {
		return Effect{Mode: m.state.Mode, LevelID: m.LevelID()}, &InvalidTransitionError{State: m.state, Event: ev}
	}
	return act(m), nil
}

// Step turns one tick of platformer signals into at most one transition.
// Ticks with nothing to do return a zero-change effect and no error.
func (m *Machine) Step(sig Signals) (Effect, error) {
	if sig.Reset {
		return m.Fire(EventReset)
	}
	if m.state.Mode != ModePlatforming || !m.Stage().HasDoor() {
		return m.idle(), nil
	}

	switch m.state.Door {
	case DoorClosed:
		if sig.InDoor {
			return m.Fire(EventEnterDoor)
		}
	case DoorOpen:
		if !sig.InDoor {
			return m.Fire(EventLeaveDoor)
		}
		if sig.Confirm {
			return m.Fire(EventConfirm)
		}
	}
	return m.idle(), nil
}

// Finish reports the outcome of the active minigame after the platformer
// polled its flags.
func (m *Machine) Finish(won bool) (Effect, error) {
	if won {
		return m.Fire(EventMinigameWon)
	}
	return m.Fire(EventMinigameQuit)
}

func (m *Machine) idle() Effect {
	return Effect{Mode: m.state.Mode, LevelID: m.LevelID()}
}

func openDoor(m *Machine) Effect {
	m.state.Door = DoorOpen
	return Effect{Reload: true, LevelID: m.LevelID(), Mode: m.state.Mode, DoorOpened: true}
}

func closeDoor(m *Machine) Effect {
	m.state.Door = DoorClosed
	return Effect{Reload: true, LevelID: m.LevelID(), Mode: m.state.Mode}
}

func enterMinigame(m *Machine) Effect {
	m.state.Mode = m.Stage().Minigame
	return Effect{LevelID: m.LevelID(), Mode: m.state.Mode, DoorConfirmed: true}
}

func clearStage(m *Machine) Effect {
	next := m.Stage().Next
	m.state = State{Mode: ModePlatforming, Geometry: next, Door: DoorClosed}
	respawn := m.Stage().Respawn
	return Effect{
		Reload:       true,
		LevelID:      m.LevelID(),
		Mode:         ModePlatforming,
		Respawn:      &respawn,
		ResetActor:   true,
		StageCleared: true,
	}
}

func leaveMinigame(m *Machine) Effect {
	m.state.Mode = ModePlatforming
	return Effect{LevelID: m.LevelID(), Mode: ModePlatforming}
}

func reset(m *Machine) Effect {
	m.state = State{Mode: ModePlatforming, Geometry: m.start, Door: DoorClosed}
	respawn := m.Stage().Respawn
	return Effect{
		Reload:     true,
		LevelID:    m.LevelID(),
		Mode:       ModePlatforming,
		Respawn:    &respawn,
		ResetActor: true,
	}
}
