package leveldata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTwoByTwoGrid(t *testing.T) {
	grid := Grid{TileSize: 32, Columns: 2, Origin: geom.Vec2{X: 16, Y: 16}}

	level, err := Parse(strings.NewReader("(1,1) (6,0) (1,1) (1,1)"), grid, DefaultClassifier)
	require.NoError(t, err)

	require.Len(t, level.Tiles, 4)
	assert.Equal(t, []int{1}, level.Doors)
	assert.Equal(t, KindDoor, level.Tiles[1].Kind)

	centers := []geom.Vec2{{X: 16, Y: 16}, {X: 48, Y: 16}, {X: 16, Y: 48}, {X: 48, Y: 48}}
	for i, c := range centers {
		assert.Equal(t, c, level.Tiles[i].Box.Center, "tile %d", i)
		assert.Equal(t, geom.Vec2{X: 32, Y: 32}, level.Tiles[i].Box.Size, "tile %d", i)
	}
}

func TestParseShapesAndKinds(t *testing.T) {
	grid := Grid{TileSize: 32, Columns: 5, Origin: geom.Vec2{X: 16, Y: 16}}

	level, err := Parse(strings.NewReader("(0,3)(2,2)(9,4)(5,4)(3,1)\n"), grid, DefaultClassifier)
	require.NoError(t, err)
	require.Len(t, level.Tiles, 5)

	tests := []struct {
		name   string
		idx    int
		kind   Kind
		center geom.Vec2
		size   geom.Vec2
	}{
		{"top half", 0, KindHalfTop, geom.Vec2{X: 16, Y: 24}, geom.Vec2{X: 32, Y: 16}},
		{"lethal keeps bottom half", 1, KindLethal, geom.Vec2{X: 48, Y: 8}, geom.Vec2{X: 32, Y: 16}},
		{"no collision column", 2, KindDecorative, geom.Vec2{X: 80, Y: 16}, geom.Vec2{X: 32, Y: 32}},
		{"door", 3, KindDoor, geom.Vec2{X: 112, Y: 16}, geom.Vec2{X: 32, Y: 32}},
		{"solid", 4, KindSolid, geom.Vec2{X: 144, Y: 16}, geom.Vec2{X: 32, Y: 32}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tile := level.Tiles[tc.idx]
			assert.Equal(t, tc.kind, tile.Kind)
			assert.Equal(t, tc.center, tile.Box.Center)
			assert.Equal(t, tc.size, tile.Box.Size)
		})
	}
	assert.Equal(t, []int{3}, level.Doors)
}

func TestParseRejectsMalformedCells(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"letter", "(1,1) (a,0)"},
		{"two digits", "(10,1)"},
		{"missing comma", "(11)"},
		{"empty", "  \n "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, err := Parse(strings.NewReader(tc.input), DefaultGrid, DefaultClassifier)
			assert.Nil(t, level)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestClassifierPrecedence(t *testing.T) {
	cls := DefaultClassifier

	assert.Equal(t, KindLethal, cls.Kind(TexCoord{0, 0}), "death wins over bottom half")
	assert.Equal(t, KindDecorative, cls.Kind(TexCoord{9, 3}))
	assert.Equal(t, KindDoor, cls.Kind(TexCoord{6, 2}))
	assert.Equal(t, KindSolid, cls.Kind(TexCoord{4, 4}))
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/Level0.txt": {Data: []byte("(1,0) (1,0) (6,0) (1,0) (1,0) (1,0) (1,0) (1,0) (1,0) (1,0)")},
		"levels/Level1.txt": {Data: []byte("(1,0) (x,0)")},
	}

	level, err := Load(fsys, 0, DefaultGrid, DefaultClassifier)
	require.NoError(t, err)
	assert.Equal(t, 0, level.ID)
	assert.Len(t, level.Tiles, 10)
	assert.True(t, level.IsDoor(2))
	assert.False(t, level.IsDoor(3))

	_, err = Load(fsys, 1, DefaultGrid, DefaultClassifier)
	var resErr *ResourceError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, 1, resErr.ID)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Load(fsys, 7, DefaultGrid, DefaultClassifier)
	assert.ErrorIs(t, err, ErrMissing)
}
