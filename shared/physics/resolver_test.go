package physics

import (
	"testing"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hitbox = geom.Vec2{X: 16, Y: 16}

func tile(cx, cy, w, h float64, kind leveldata.Kind) leveldata.Tile {
	return leveldata.Tile{Box: geom.NewAABB(cx, cy, w, h), Kind: kind}
}

func levelOf(tiles ...leveldata.Tile) *leveldata.Level {
	level := &leveldata.Level{Tiles: tiles}
	for i, t := range tiles {
		if t.Kind == leveldata.KindDoor {
			level.Doors = append(level.Doors, i)
		}
	}
	return level
}

func assertNoSolidOverlap(t *testing.T, a *Actor, level *leveldata.Level) {
	t.Helper()
	box := a.Box(hitbox)
	for i, tl := range level.Tiles {
		if !tl.Collides() {
			continue
		}
		assert.False(t, geom.Overlaps(tl.Box, box), "actor %v still overlaps tile %d %v", a.Pos, i, tl.Box)
	}
}

func TestActorLandsOnFloor(t *testing.T) {
	floor := levelOf(tile(100, 90, 32, 8, leveldata.KindSolid))
	a := newTestActor(geom.Vec2{X: 100, Y: 100})
	r := NewResolver(3, hitbox)

	for tick := 0; tick < 5 && !a.Grounded; tick++ {
		a.Move(0, 0)
		r.Resolve(a, floor)
	}

	require.True(t, a.Grounded)
	floorTop := floor.Tiles[0].Box.Top()
	assert.Equal(t, floorTop+hitbox.Y/2, a.Pos.Y, "actor rests with its bottom on the floor top")
	assert.Equal(t, 0.0, a.Vel.Y)

	// Standing still keeps it there.
	for tick := 0; tick < 10; tick++ {
		a.Move(0, 0)
		r.Resolve(a, floor)
	}
	assert.Equal(t, floorTop+hitbox.Y/2, a.Pos.Y)
	assert.True(t, a.Grounded)
}

func TestLethalTileRespawns(t *testing.T) {
	level := levelOf(tile(50, 50, 32, 16, leveldata.KindLethal))
	a := newTestActor(geom.Vec2{X: 50, Y: 52})

	res := NewResolver(1, hitbox).Resolve(a, level)

	assert.True(t, res.Died)
	assert.Equal(t, a.Respawn, a.Pos)
}

func TestDoorTilesNeverCorrect(t *testing.T) {
	level := levelOf(
		tile(100, 100, 32, 32, leveldata.KindDoor),
		tile(100, 132, 32, 32, leveldata.KindDoor),
	)
	a := newTestActor(geom.Vec2{X: 104, Y: 110})
	a.Vel = geom.Vec2{X: 4, Y: -3}

	res := NewResolver(3, hitbox).Resolve(a, level)

	assert.Equal(t, geom.Vec2{X: 104, Y: 110}, a.Pos)
	assert.Equal(t, geom.Vec2{X: 4, Y: -3}, a.Vel)
	assert.False(t, res.Landed)
}

func TestDecorativeTilesNeverCorrect(t *testing.T) {
	level := levelOf(tile(100, 100, 32, 32, leveldata.KindDecorative))
	a := newTestActor(geom.Vec2{X: 100, Y: 100})

	NewResolver(3, hitbox).Resolve(a, level)

	assert.Equal(t, geom.Vec2{X: 100, Y: 100}, a.Pos)
}

func TestResolveIsNoOpWithoutContacts(t *testing.T) {
	level := levelOf(tile(16, 16, 32, 32, leveldata.KindSolid))
	a := newTestActor(geom.Vec2{X: 100, Y: 100})
	a.Vel = geom.Vec2{X: 2, Y: -5}

	res := NewResolver(3, hitbox).Resolve(a, level)

	assert.Equal(t, 0, res.Passes)
	assert.Equal(t, geom.Vec2{X: 100, Y: 100}, a.Pos)
	assert.Equal(t, geom.Vec2{X: 2, Y: -5}, a.Vel)
}

func TestResolverConverges(t *testing.T) {
	corner := levelOf(
		tile(16, 16, 32, 32, leveldata.KindSolid),
		tile(48, 16, 32, 32, leveldata.KindSolid),
		tile(80, 16, 32, 32, leveldata.KindSolid),
		tile(80, 48, 32, 32, leveldata.KindSolid),
	)

	tests := []struct {
		name  string
		level *leveldata.Level
		start geom.Vec2
		want  geom.Vec2
	}{
		{"floor and wall corner", corner, geom.Vec2{X: 58, Y: 38}, geom.Vec2{X: 56, Y: 40}},
		{"sunk into floor", corner, geom.Vec2{X: 30, Y: 36}, geom.Vec2{X: 30, Y: 40}},
		{"pushed out of wall", corner, geom.Vec2{X: 61, Y: 56}, geom.Vec2{X: 56, Y: 56}},
		{"under a half platform", levelOf(tile(100, 120, 32, 16, leveldata.KindHalfTop)), geom.Vec2{X: 100, Y: 106}, geom.Vec2{X: 100, Y: 104}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestActor(tc.start)
			NewResolver(3, hitbox).Resolve(a, tc.level)

			assert.InDelta(t, tc.want.X, a.Pos.X, 1e-9)
			assert.InDelta(t, tc.want.Y, a.Pos.Y, 1e-9)
			assertNoSolidOverlap(t, a, tc.level)
		})
	}
}

func TestResolveCeilingDoesNotGround(t *testing.T) {
	level := levelOf(tile(100, 120, 32, 16, leveldata.KindSolid))
	a := newTestActor(geom.Vec2{X: 100, Y: 106})
	a.Vel.Y = 5

	res := NewResolver(3, hitbox).Resolve(a, level)

	assert.False(t, a.Grounded)
	assert.False(t, res.Landed)
	assert.Equal(t, 0.0, a.Vel.Y)
}
