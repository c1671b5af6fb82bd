package minigame

import (
	"math/rand/v2"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/render"
)

const (
	iceCols    = 13
	iceRows    = 9
	icePitch   = 25.0
	iceOriginX = 13.0
	iceOriginY = 215.0
	prizeSize  = 23.0
	// PrizeRevealHits is the number of prize clicks before it is pulled out.
	PrizeRevealHits = 3
)

// MiningConfig tunes the click cooldown.
type MiningConfig struct {
	CooldownTicks int
}

var DefaultMining = MiningConfig{CooldownTicks: 1}

// IceStage is how cracked an ice block is.
type IceStage int

const (
	IceSolid IceStage = iota
	IceCracked
	IceShattered
	IceGone
)

var iceRegions = [IceGone]render.Region{
	IceSolid:     {Sheet: render.SheetMinigame, X: 6, Y: 11},
	IceCracked:   {Sheet: render.SheetMinigame, X: 6, Y: 12},
	IceShattered: {Sheet: render.SheetMinigame, X: 7, Y: 12},
}

var prizeRegions = []render.Region{
	{Sheet: render.SheetMinigame, X: 12, Y: 0},
	{Sheet: render.SheetMinigame, X: 13, Y: 1},
	{Sheet: render.SheetMinigame, X: 14, Y: 1},
	{Sheet: render.SheetMinigame, X: 14, Y: 2},
	{Sheet: render.SheetMinigame, X: 14, Y: 5},
}

type iceBlock struct {
	box   geom.AABB
	stage IceStage
}

// Mining hides a prize behind a wall of ice. Clicks chip the ice away and
// tap the prize; after enough taps it is pulled out and one more click
// claims it.
type Mining struct {
	Flags

	cfg       MiningConfig
	ice       []iceBlock
	prize     geom.AABB
	prizeTex  render.Region
	prizeHits int
	cooldown  int
}

func NewMining(cfg MiningConfig, rng *rand.Rand) *Mining {
	m := &Mining{cfg: cfg, ice: make([]iceBlock, 0, iceCols*iceRows)}

	px := iceOriginX + icePitch*float64(rng.IntN(iceCols))
	py := iceOriginY - icePitch*float64(rng.IntN(iceRows))
	m.prize = geom.NewAABB(px, py, prizeSize, prizeSize)
	m.prizeTex = prizeRegions[rng.IntN(len(prizeRegions))]

	for row := 0; row < iceRows; row++ {
		for col := 0; col < iceCols; col++ {
			x := iceOriginX + icePitch*float64(col)
			y := iceOriginY - icePitch*float64(row)
			m.ice = append(m.ice, iceBlock{box: geom.NewAABB(x, y, icePitch, icePitch)})
		}
	}
	return m
}

// Prize returns the prize box.
func (m *Mining) Prize() geom.AABB { return m.prize }

// PrizeHits is how many times the prize has been clicked.
func (m *Mining) PrizeHits() int { return m.prizeHits }

// IceStageAt returns the stage of the block at (col, row); row 0 is the top.
func (m *Mining) IceStageAt(col, row int) IceStage {
	return m.ice[row*iceCols+col].stage
}

// Remaining counts ice blocks not yet removed.
func (m *Mining) Remaining() int {
	n := 0
	for _, b := range m.ice {
		if b.stage != IceGone {
			n++
		}
	}
	return n
}

func (m *Mining) Update(in Input) {
	if m.finished() {
		return
	}
	if in.Exit {
		m.abandon()
		return
	}
	if m.cooldown > 0 {
		m.cooldown--
		return
	}
	if !in.Click {
		return
	}
	m.cooldown = m.cfg.CooldownTicks

	if m.prize.Contains(in.Pointer) {
		switch {
		case m.prizeHits < PrizeRevealHits:
			m.prizeHits++
		case m.prizeHits == PrizeRevealHits:
			m.prize = geom.NewAABB(140, 120, 64, 64)
			m.prizeHits++
		default:
			m.complete()
			return
		}
	}

	for i := range m.ice {
		b := &m.ice[i]
		if b.stage == IceGone || !b.box.Contains(in.Pointer) {
			continue
		}
		b.stage++
	}
}

func (m *Mining) Sprites() []render.Sprite {
	sprites := make([]render.Sprite, 0, len(m.ice)+1)
	revealed := m.prizeHits > PrizeRevealHits
	if !revealed {
		sprites = append(sprites, render.Sprite{Box: m.prize, Region: m.prizeTex})
	}
	for _, b := range m.ice {
		if b.stage == IceGone {
			continue
		}
		sprites = append(sprites, render.Sprite{Box: b.box, Region: iceRegions[b.stage]})
	}
	if revealed {
		sprites = append(sprites, render.Sprite{Box: m.prize, Region: m.prizeTex})
	}
	return sprites
}
