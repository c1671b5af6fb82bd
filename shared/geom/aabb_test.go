package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplacementNonOverlapping(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
	}{
		{"apart horizontally", NewAABB(0, 0, 10, 10), NewAABB(20, 0, 10, 10)},
		{"apart vertically", NewAABB(0, 0, 10, 10), NewAABB(0, 20, 10, 10)},
		{"touching right edge", NewAABB(0, 0, 10, 10), NewAABB(10, 0, 10, 10)},
		{"touching top edge", NewAABB(0, 0, 10, 10), NewAABB(0, 10, 10, 10)},
		{"empty box", NewAABB(0, 0, 10, 10), NewAABB(0, 0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Displacement(tc.a, tc.b)
			assert.False(t, ok)
			assert.False(t, Overlaps(tc.a, tc.b))
		})
	}
}

func TestDisplacementDepths(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected Vec2
	}{
		{"shallow from above", NewAABB(100, 90, 32, 8), NewAABB(100, 100, 16, 16), Vec2{X: 16, Y: 2}},
		{"shallow from the left", NewAABB(0, 0, 32, 32), NewAABB(-22, 0, 16, 16), Vec2{X: 2, Y: 16}},
		{"contained", NewAABB(0, 0, 20, 20), NewAABB(0, 0, 4, 4), Vec2{X: 4, Y: 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := Displacement(tc.a, tc.b)
			require.True(t, ok)
			assert.InDelta(t, tc.expected.X, d.X, 1e-9)
			assert.InDelta(t, tc.expected.Y, d.Y, 1e-9)
		})
	}
}

// Applying the minimum translation leaves the boxes exactly touching.
func TestMinimumTranslationMakesBoxesTangent(t *testing.T) {
	tile := NewAABB(100, 90, 32, 8)
	offsets := []Vec2{
		{X: 0, Y: 9}, {X: 0, Y: -9}, {X: 20, Y: 0}, {X: -20, Y: 0},
		{X: 15, Y: 7}, {X: -3, Y: -10}, {X: 23.5, Y: 1},
	}

	for _, off := range offsets {
		actor := NewAABB(100+off.X, 90+off.Y, 16, 16)
		mtv, ok := MinimumTranslation(tile, actor)
		require.True(t, ok, "offset %v should overlap", off)

		moved := actor.Translate(mtv)
		assert.False(t, Overlaps(tile, moved), "offset %v still overlaps after %v", off, mtv)

		if mtv.Y != 0 {
			gap := math.Min(math.Abs(moved.Bottom()-tile.Top()), math.Abs(moved.Top()-tile.Bottom()))
			assert.InDelta(t, 0, gap, 1e-9)
		} else {
			gap := math.Min(math.Abs(moved.Left()-tile.Right()), math.Abs(moved.Right()-tile.Left()))
			assert.InDelta(t, 0, gap, 1e-9)
		}
	}
}

func TestMinimumTranslationPrefersVerticalOnTie(t *testing.T) {
	a := NewAABB(0, 0, 10, 10)
	b := NewAABB(8, 8, 10, 10)

	mtv, ok := MinimumTranslation(a, b)
	require.True(t, ok)
	assert.Equal(t, Vec2{Y: 2}, mtv)
}

func TestContains(t *testing.T) {
	box := NewAABB(40, 120, 40, 60)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", Vec2{X: 40, Y: 120}, true},
		{"corner", Vec2{X: 20, Y: 90}, true},
		{"left of box", Vec2{X: 19.9, Y: 120}, false},
		{"above box", Vec2{X: 40, Y: 150.1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, box.Contains(tc.p))
		})
	}

	assert.False(t, NewAABB(0, 0, 0, 0).Contains(Vec2{}), "empty boxes contain nothing")
}

func TestIsDegenerate(t *testing.T) {
	assert.True(t, IsDegenerate(Vec2{}))
	assert.True(t, IsDegenerate(Vec2{X: 3, Y: 1e-9}))
	assert.False(t, IsDegenerate(Vec2{X: 3, Y: 0.5}))
}

func TestScreenToWorld(t *testing.T) {
	tests := []struct {
		name     string
		screen   Vec2
		camera   Vec2
		scale    float64
		expected Vec2
	}{
		{"top left maps to top of world", Vec2{X: 0, Y: 0}, Vec2{}, 1, Vec2{X: 0, Y: 240}},
		{"bottom left is origin", Vec2{X: 0, Y: 240}, Vec2{}, 1, Vec2{X: 0, Y: 0}},
		{"scaled window", Vec2{X: 800, Y: 600}, Vec2{}, 5, Vec2{X: 160, Y: 120}},
		{"camera offset", Vec2{X: 10, Y: 230}, Vec2{X: 5, Y: 5}, 1, Vec2{X: 15, Y: 15}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			height := 240.0
			if tc.scale == 5 {
				height = 1200
			}
			got := ScreenToWorld(tc.screen, height, tc.camera, tc.scale)
			assert.InDelta(t, tc.expected.X, got.X, 1e-9)
			assert.InDelta(t, tc.expected.Y, got.Y, 1e-9)
		})
	}
}
