package progress

import (
	"errors"
	"testing"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := NewMachine(DefaultStages, GeometryHub)
	require.NoError(t, err)
	return m
}

func TestEnteringDoorOpensIt(t *testing.T) {
	m := newTestMachine(t)

	eff, err := m.Step(Signals{InDoor: true})
	require.NoError(t, err)

	assert.True(t, eff.Reload)
	assert.True(t, eff.DoorOpened)
	assert.Equal(t, 1, eff.LevelID)
	assert.Equal(t, State{Mode: ModePlatforming, Geometry: GeometryHub, Door: DoorOpen}, m.State())

	// Staying inside is idempotent.
	eff, err = m.Step(Signals{InDoor: true})
	require.NoError(t, err)
	assert.False(t, eff.Reload)
	assert.Equal(t, 1, m.LevelID())
}

func TestLeavingOpenDoorClosesIt(t *testing.T) {
	m := newTestMachine(t)
	_, err := m.Step(Signals{InDoor: true})
	require.NoError(t, err)

	eff, err := m.Step(Signals{InDoor: false, Confirm: true})
	require.NoError(t, err)

	assert.True(t, eff.Reload)
	assert.Equal(t, 0, eff.LevelID)
	assert.Equal(t, DoorClosed, m.State().Door)
	assert.Equal(t, ModePlatforming, m.State().Mode, "confirm outside the door does nothing")
}

func TestConfirmInOpenDoorSwitchesMode(t *testing.T) {
	m := newTestMachine(t)
	_, err := m.Step(Signals{InDoor: true})
	require.NoError(t, err)

	eff, err := m.Step(Signals{InDoor: true, Confirm: true})
	require.NoError(t, err)

	assert.Equal(t, ModeSimonSays, eff.Mode)
	assert.True(t, eff.DoorConfirmed)
	assert.False(t, eff.Reload)
	assert.Equal(t, ModeSimonSays, m.State().Mode)
	assert.Equal(t, 1, m.LevelID(), "level unchanged until the minigame reports")

	// Platformer signals are ignored while a minigame runs.
	eff, err = m.Step(Signals{InDoor: false})
	require.NoError(t, err)
	assert.False(t, eff.Reload)
	assert.Equal(t, 1, m.LevelID())
}

func TestConfirmWhileClosedDoesNothing(t *testing.T) {
	m := newTestMachine(t)

	eff, err := m.Step(Signals{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, ModePlatforming, eff.Mode)
	assert.Equal(t, State{Mode: ModePlatforming, Geometry: GeometryHub}, m.State())
}

func TestMinigameWinAdvancesStage(t *testing.T) {
	m := newTestMachine(t)
	_, _ = m.Step(Signals{InDoor: true})
	_, _ = m.Step(Signals{InDoor: true, Confirm: true})

	eff, err := m.Finish(true)
	require.NoError(t, err)

	assert.True(t, eff.StageCleared)
	assert.True(t, eff.Reload)
	assert.True(t, eff.ResetActor)
	require.NotNil(t, eff.Respawn)
	assert.Equal(t, DefaultStages[GeometryLab].Respawn, *eff.Respawn)
	assert.Equal(t, 2, eff.LevelID)
	assert.Equal(t, State{Mode: ModePlatforming, Geometry: GeometryLab, Door: DoorClosed}, m.State())
}

func TestMinigameQuitKeepsLevel(t *testing.T) {
	m := newTestMachine(t)
	_, _ = m.Step(Signals{InDoor: true})
	_, _ = m.Step(Signals{InDoor: true, Confirm: true})

	eff, err := m.Finish(false)
	require.NoError(t, err)

	assert.False(t, eff.Reload)
	assert.Equal(t, ModePlatforming, m.State().Mode)
	assert.Equal(t, GeometryHub, m.State().Geometry)
	assert.Equal(t, 1, m.LevelID())
}

func TestFullProgression(t *testing.T) {
	m := newTestMachine(t)

	wantModes := []Mode{ModeSimonSays, ModeConnectWires, ModeMining}
	for _, want := range wantModes {
		_, err := m.Step(Signals{InDoor: true})
		require.NoError(t, err)
		eff, err := m.Step(Signals{InDoor: true, Confirm: true})
		require.NoError(t, err)
		assert.Equal(t, want, eff.Mode)
		_, err = m.Finish(true)
		require.NoError(t, err)
	}

	assert.Equal(t, GeometryFinale, m.State().Geometry)
	assert.Equal(t, 6, m.LevelID())

	// The finale has no door to open.
	eff, err := m.Step(Signals{InDoor: true})
	require.NoError(t, err)
	assert.False(t, eff.Reload)

	_, err = m.Fire(EventEnterDoor)
	assert.Error(t, err)
}

func TestResetFromAnywhere(t *testing.T) {
	m := newTestMachine(t)
	_, _ = m.Step(Signals{InDoor: true})
	_, _ = m.Step(Signals{InDoor: true, Confirm: true})
	_, _ = m.Finish(true)
	_, _ = m.Step(Signals{InDoor: true})

	eff, err := m.Step(Signals{InDoor: true, Reset: true})
	require.NoError(t, err)

	assert.True(t, eff.Reload)
	assert.True(t, eff.ResetActor)
	assert.Equal(t, 0, eff.LevelID)
	require.NotNil(t, eff.Respawn)
	assert.Equal(t, geom.Vec2{X: 160, Y: 60}, *eff.Respawn)
	assert.Equal(t, State{Mode: ModePlatforming, Geometry: GeometryHub}, m.State())
}

func TestInvalidTransitionsAreRejected(t *testing.T) {
	tests := []struct {
		name  string
		setup []Event
		event Event
	}{
		{"win without minigame", nil, EventMinigameWon},
		{"quit without minigame", nil, EventMinigameQuit},
		{"confirm with door closed", nil, EventConfirm},
		{"leave a closed door", nil, EventLeaveDoor},
		{"enter an open door twice", []Event{EventEnterDoor}, EventEnterDoor},
		{"confirm inside a minigame", []Event{EventEnterDoor, EventConfirm}, EventConfirm},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine(t)
			for _, ev := range tc.setup {
				_, err := m.Fire(ev)
				require.NoError(t, err)
			}
			before := m.State()

			_, err := m.Fire(tc.event)

			var invalid *InvalidTransitionError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.event, invalid.Event)
			assert.Equal(t, before, m.State(), "state is unchanged")
		})
	}
}

func TestNewMachineValidatesStages(t *testing.T) {
	_, err := NewMachine(DefaultStages, Geometry(42))
	assert.Error(t, err)

	broken := map[Geometry]Stage{
		GeometryHub: {ClosedLevel: 0, OpenLevel: 1, Minigame: ModeSimonSays, Next: GeometryLab},
	}
	_, err = NewMachine(broken, GeometryHub)
	assert.Error(t, err)

	noGame := map[Geometry]Stage{
		GeometryHub: {ClosedLevel: 0, OpenLevel: 1, Next: GeometryHub},
	}
	_, err = NewMachine(noGame, GeometryHub)
	assert.Error(t, err)
}

func TestRestore(t *testing.T) {
	m := newTestMachine(t)

	require.NoError(t, m.Restore(GeometryCave))
	assert.Equal(t, 4, m.LevelID())
	assert.Error(t, m.Restore(Geometry(9)))
}

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		name string
		want Geometry
		ok   bool
	}{
		{"hub", GeometryHub, true},
		{"lab", GeometryLab, true},
		{"cave", GeometryCave, true},
		{"finale", GeometryFinale, true},
		{"Hub", GeometryHub, false},
		{"", GeometryHub, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := ParseGeometry(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, g)
		})
	}
}
