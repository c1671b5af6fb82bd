package minigame

import (
	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/render"
)

// WireColor is a paint color in the wires puzzle.
type WireColor int

const (
	NoColor WireColor = iota - 1
	Pink
	Green
	Blue
	Orange
	Purple
	colorCount
)

func (c WireColor) String() string {
	switch c {
	case Pink:
		return "pink"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Purple:
		return "purple"
	}
	return "none"
}

const (
	wireCols     = 5
	wireRows     = 5
	wireOriginX  = 90.0
	wireOriginY  = 190.0
	wirePitch    = 35.0
	wireSquare   = wirePitch - 5
	wireEndpoint = wirePitch - 10
	swatchSize   = 16.0
)

// Cell is a (col, row) position; row 0 is the top row.
type Cell struct {
	Col, Row int
}

// Index is the row-major position of the cell.
func (c Cell) Index() int { return c.Row*wireCols + c.Col }

// wireEndpoints are the fixed ends of each wire.
var wireEndpoints = map[WireColor][2]Cell{
	Pink:   {{1, 1}, {3, 1}},
	Green:  {{1, 4}, {3, 3}},
	Blue:   {{1, 3}, {3, 4}},
	Orange: {{0, 1}, {4, 1}},
	Purple: {{0, 2}, {0, 4}},
}

// wireSolution lists the cells each wire must pass through.
var wireSolution = map[WireColor][]int{
	Pink:   {7},
	Green:  {17, 22},
	Blue:   {11, 12, 13, 14, 19, 24},
	Orange: {0, 1, 2, 3, 4},
	Purple: {15},
}

var (
	swatchRegions = [colorCount]render.Region{
		Pink:   {Sheet: render.SheetMinigame, X: 10, Y: 4},
		Green:  {Sheet: render.SheetMinigame, X: 9, Y: 5},
		Blue:   {Sheet: render.SheetMinigame, X: 11, Y: 4},
		Orange: {Sheet: render.SheetMinigame, X: 11, Y: 5},
		Purple: {Sheet: render.SheetMinigame, X: 10, Y: 5},
	}
	paintRegions = [colorCount]render.Region{
		Pink:   {Sheet: render.SheetMinigame, X: 10, Y: 2},
		Green:  {Sheet: render.SheetMinigame, X: 9, Y: 3},
		Blue:   {Sheet: render.SheetMinigame, X: 11, Y: 2},
		Orange: {Sheet: render.SheetMinigame, X: 11, Y: 3},
		Purple: {Sheet: render.SheetMinigame, X: 10, Y: 3},
	}
	blankRegion = render.Region{Sheet: render.SheetMinigame, X: 1, Y: 1}
)

// ConnectWires is a paint-the-path puzzle: pick a color from the palette,
// then click grid squares to lay that wire between its two endpoints.
type ConnectWires struct {
	Flags

	selected  WireColor
	squares   [wireCols * wireRows]geom.AABB
	painted   [wireCols * wireRows]WireColor
	endpoints map[int]WireColor
	swatches  [colorCount]geom.AABB
}

func NewConnectWires() *ConnectWires {
	g := &ConnectWires{selected: Pink, endpoints: map[int]WireColor{}}

	for row := 0; row < wireRows; row++ {
		for col := 0; col < wireCols; col++ {
			c := Cell{Col: col, Row: row}
			g.squares[c.Index()] = geom.NewAABB(cellCenterX(col), cellCenterY(row), wireSquare, wireSquare)
			g.painted[c.Index()] = NoColor
		}
	}
	for color, ends := range wireEndpoints {
		for _, c := range ends {
			g.endpoints[c.Index()] = color
		}
	}
	for c := Pink; c < colorCount; c++ {
		x := Screen.X/2 + float64(c-Pink-2)*20
		g.swatches[c] = geom.NewAABB(x, Screen.Y-10, swatchSize, swatchSize)
	}
	return g
}

func cellCenterX(col int) float64 { return wireOriginX + float64(col)*wirePitch }
func cellCenterY(row int) float64 { return wireOriginY - float64(row)*wirePitch }

// Selected is the color the next click paints with.
func (g *ConnectWires) Selected() WireColor { return g.selected }

// Painted returns the color at grid index idx.
func (g *ConnectWires) Painted(idx int) WireColor { return g.painted[idx] }

// SquareBox returns the hit box of a grid cell.
func (g *ConnectWires) SquareBox(c Cell) geom.AABB { return g.squares[c.Index()] }

// SwatchBox returns the hit box of a palette swatch.
func (g *ConnectWires) SwatchBox(c WireColor) geom.AABB { return g.swatches[c] }

func (g *ConnectWires) Update(in Input) {
	if g.finished() {
		return
	}
	if in.Exit {
		g.abandon()
		return
	}
	if !in.Click {
		return
	}

	for c := Pink; c < colorCount; c++ {
		if g.swatches[c].Contains(in.Pointer) {
			g.selected = c
			return
		}
	}
	for idx, box := range g.squares {
		if !box.Contains(in.Pointer) {
			continue
		}
		if _, fixed := g.endpoints[idx]; fixed {
			return
		}
		g.painted[idx] = g.selected
		break
	}

	if g.solved() {
		g.complete()
	}
}

// solved reports whether every solution cell carries its wire's color.
func (g *ConnectWires) solved() bool {
	for color, cells := range wireSolution {
		for _, idx := range cells {
			if g.painted[idx] != color {
				return false
			}
		}
	}
	return true
}

func (g *ConnectWires) Sprites() []render.Sprite {
	sprites := make([]render.Sprite, 0, len(g.squares)+len(g.endpoints)+int(colorCount))
	for idx, box := range g.squares {
		region := blankRegion
		if c := g.painted[idx]; c != NoColor {
			region = paintRegions[c]
		}
		sprites = append(sprites, render.Sprite{Box: box, Region: region})
	}
	for idx, color := range g.endpoints {
		center := g.squares[idx].Center
		box := geom.NewAABB(center.X, center.Y, wireEndpoint, wireEndpoint)
		sprites = append(sprites, render.Sprite{Box: box, Region: swatchRegions[color]})
	}
	for c := Pink; c < colorCount; c++ {
		alpha := 0.5
		if c == g.selected {
			alpha = 1
		}
		sprites = append(sprites, render.Sprite{Box: g.swatches[c], Region: swatchRegions[c], Alpha: alpha})
	}
	return sprites
}
