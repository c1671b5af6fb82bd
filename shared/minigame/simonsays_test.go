package minigame

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = float32(1.0 / 60)

func newTestSimon(rounds int) *SimonSays {
	cfg := DefaultSimonSays
	cfg.Rounds = rounds
	return NewSimonSays(cfg, rand.New(rand.NewPCG(1, 2)))
}

// waitPlayback ticks until the pattern finishes playing.
func waitPlayback(t *testing.T, s *SimonSays) {
	t.Helper()
	for i := 0; i < 10000 && s.Playing(); i++ {
		s.Update(Input{DT: tick})
	}
	require.False(t, s.Playing(), "playback never finished")
}

func clickKnob(s *SimonSays, k Knob) {
	s.Update(Input{Pointer: s.KnobBox(k).Center, Click: true, DT: tick})
}

func wrongKnob(k Knob) Knob {
	return (k + 1) % knobCount
}

func TestSimonSaysKnobLayout(t *testing.T) {
	s := newTestSimon(3)
	tests := []struct {
		knob Knob
		x, y float64
	}{
		{KnobLeft, 80, 120},
		{KnobRight, 240, 120},
		{KnobTop, 160, 180},
		{KnobBottom, 160, 60},
	}
	for _, tc := range tests {
		box := s.KnobBox(tc.knob)
		assert.Equal(t, tc.x, box.Center.X)
		assert.Equal(t, tc.y, box.Center.Y)
		assert.Equal(t, 40.0, box.Size.X)
		assert.Equal(t, 60.0, box.Size.Y)
	}
}

func TestSimonSaysIgnoresClicksDuringPlayback(t *testing.T) {
	s := newTestSimon(3)
	require.True(t, s.Playing())

	clickKnob(s, s.Pattern()[0])
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, 0, s.Mistakes())
}

func TestSimonSaysLightsPatternDuringPlayback(t *testing.T) {
	s := newTestSimon(3)
	first := s.Pattern()[0]

	// past the lead-in gap, into the first lit segment
	for i := 0; i < 20; i++ {
		s.Update(Input{DT: tick})
	}
	require.True(t, s.Playing())

	sprites := s.Sprites()
	require.Len(t, sprites, int(knobCount))
	assert.Greater(t, sprites[first].Opacity(), DefaultSimonSays.DimAlpha)
	for k := Knob(0); k < knobCount; k++ {
		if k != first {
			assert.Equal(t, DefaultSimonSays.DimAlpha, sprites[k].Opacity())
		}
	}
}

func TestSimonSaysCompletesAfterRounds(t *testing.T) {
	s := newTestSimon(3)

	for round := 1; round <= 3; round++ {
		waitPlayback(t, s)
		require.Len(t, s.Pattern(), round)
		pattern := append([]Knob(nil), s.Pattern()...)
		for _, k := range pattern {
			clickKnob(s, k)
		}
	}

	assert.True(t, s.Completed())
	assert.False(t, s.Quit())
	assert.Equal(t, 0, s.Mistakes())

	s.ClearCompleted()
	assert.False(t, s.Completed())
}

func TestSimonSaysWrongKnobRestarts(t *testing.T) {
	s := newTestSimon(3)
	waitPlayback(t, s)
	clickKnob(s, s.Pattern()[0])
	waitPlayback(t, s)
	require.Len(t, s.Pattern(), 2)

	clickKnob(s, wrongKnob(s.Pattern()[0]))

	assert.Equal(t, 1, s.Mistakes())
	assert.Len(t, s.Pattern(), 1)
	assert.Equal(t, 0, s.Progress())
	assert.True(t, s.Playing())
	assert.False(t, s.Completed())
}

func TestSimonSaysMissedClickIsIgnored(t *testing.T) {
	s := newTestSimon(3)
	waitPlayback(t, s)

	s.Update(Input{Pointer: Screen.Scale(0.5), Click: true, DT: tick})
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, 0, s.Mistakes())
}

func TestSimonSaysExit(t *testing.T) {
	s := newTestSimon(3)
	s.Update(Input{Exit: true, DT: tick})
	assert.True(t, s.Quit())
	assert.False(t, s.Completed())
}
