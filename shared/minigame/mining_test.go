package minigame

import (
	"math/rand/v2"
	"testing"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMining(seed uint64) *Mining {
	return NewMining(MiningConfig{}, rand.New(rand.NewPCG(seed, seed+1)))
}

func TestMiningLayout(t *testing.T) {
	m := newTestMining(1)
	assert.Equal(t, iceCols*iceRows, m.Remaining())

	prize := m.Prize()
	assert.Equal(t, prizeSize, prize.Size.X)
	assert.GreaterOrEqual(t, prize.Center.X, iceOriginX)
	assert.LessOrEqual(t, prize.Center.X, iceOriginX+icePitch*(iceCols-1))
	assert.LessOrEqual(t, prize.Center.Y, iceOriginY)
	assert.GreaterOrEqual(t, prize.Center.Y, iceOriginY-icePitch*(iceRows-1))
}

func TestMiningPrizeStaysOnGrid(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		c := newTestMining(seed).Prize().Center
		col := (c.X - iceOriginX) / icePitch
		row := (iceOriginY - c.Y) / icePitch
		assert.Equal(t, float64(int(col)), col)
		assert.Equal(t, float64(int(row)), row)
	}
}

func TestMiningIceStages(t *testing.T) {
	m := newTestMining(3)
	// pick a block that does not hold the prize
	col, row := 0, 0
	if m.Prize().Center == (geom.Vec2{X: iceOriginX, Y: iceOriginY}) {
		col = 1
	}
	p := geom.Vec2{X: iceOriginX + icePitch*float64(col), Y: iceOriginY}

	stages := []IceStage{IceCracked, IceShattered, IceGone, IceGone}
	for _, want := range stages {
		click(m, p)
		assert.Equal(t, want, m.IceStageAt(col, row))
	}
	assert.Equal(t, iceCols*iceRows-1, m.Remaining())
	assert.Equal(t, 0, m.PrizeHits())
}

func TestMiningSharedEdgeHitsBothBlocks(t *testing.T) {
	m := newTestMining(3)
	click(m, geom.Vec2{X: iceOriginX + icePitch/2, Y: iceOriginY - icePitch*4})
	assert.Equal(t, IceCracked, m.IceStageAt(0, 4))
	assert.Equal(t, IceCracked, m.IceStageAt(1, 4))
}

func TestMiningPrize(t *testing.T) {
	m := newTestMining(7)
	p := m.Prize().Center

	for i := 1; i <= PrizeRevealHits; i++ {
		click(m, p)
		assert.Equal(t, i, m.PrizeHits())
	}
	require.False(t, m.Completed())

	click(m, p)
	assert.Equal(t, PrizeRevealHits+1, m.PrizeHits())
	assert.Equal(t, geom.NewAABB(140, 120, 64, 64), m.Prize())
	require.False(t, m.Completed())

	click(m, geom.Vec2{X: 140, Y: 120})
	assert.True(t, m.Completed())
	assert.False(t, m.Quit())
}

func TestMiningCooldown(t *testing.T) {
	m := NewMining(MiningConfig{CooldownTicks: 2}, rand.New(rand.NewPCG(9, 9)))
	p := m.Prize().Center

	click(m, p)
	click(m, p)
	click(m, p)
	assert.Equal(t, 1, m.PrizeHits())

	click(m, p)
	assert.Equal(t, 2, m.PrizeHits())
}

func TestMiningExit(t *testing.T) {
	m := newTestMining(1)
	m.Update(Input{Exit: true})
	assert.True(t, m.Quit())
	assert.False(t, m.Completed())
}
