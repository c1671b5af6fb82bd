package leveldata

import "github.com/mlinden4/cs181g-unit3/shared/geom"

// Classifier derives a tile kind from its texture coordinate.
type Classifier struct {
	TopHalf      []TexCoord
	BottomHalf   []TexCoord
	Lethal       []TexCoord
	Door         []TexCoord
	NoCollisionX int // any coordinate in this sheet column is decorative
}

// DefaultClassifier matches the tile sheet shipped with the game.
var DefaultClassifier = Classifier{
	TopHalf:      []TexCoord{{0, 3}, {1, 3}, {2, 3}, {3, 3}},
	BottomHalf:   []TexCoord{{0, 0}, {2, 2}},
	Lethal:       []TexCoord{{0, 0}, {2, 2}},
	Door:         []TexCoord{{6, 0}, {6, 1}, {6, 2}, {6, 3}, {5, 3}, {5, 4}},
	NoCollisionX: 9,
}

func contains(set []TexCoord, tc TexCoord) bool {
	for _, c := range set {
		if c == tc {
			return true
		}
	}
	return false
}

// Kind returns the collision behavior for tc.
func (c Classifier) Kind(tc TexCoord) Kind {
	switch {
	case tc.X == c.NoCollisionX:
		return KindDecorative
	case contains(c.Lethal, tc):
		return KindLethal
	case contains(c.Door, tc):
		return KindDoor
	case contains(c.TopHalf, tc):
		return KindHalfTop
	case contains(c.BottomHalf, tc):
		return KindHalfBottom
	}
	return KindSolid
}

// shape returns the collision box of a cell centered at (x, y). Lethal
// tiles share the bottom-half shape of spikes and pits.
func (c Classifier) shape(kind Kind, tc TexCoord, x, y, size float64) geom.AABB {
	switch {
	case kind == KindHalfTop:
		return geom.NewAABB(x, y+size/4, size, size/2)
	case kind == KindHalfBottom, kind == KindLethal && contains(c.BottomHalf, tc):
		return geom.NewAABB(x, y-size/4, size, size/2)
	}
	return geom.NewAABB(x, y, size, size)
}

// place appends the tiles for coords to level, in grid order.
func place(level *Level, coords []TexCoord, kinds []Kind, grid Grid, cls Classifier) {
	pos := grid.Origin
	for i, tc := range coords {
		kind := kinds[i]
		tile := Tile{
			Box:  cls.shape(kind, tc, pos.X, pos.Y, grid.TileSize),
			Tex:  tc,
			Kind: kind,
		}
		if kind == KindDoor {
			level.Doors = append(level.Doors, len(level.Tiles))
		}
		level.Tiles = append(level.Tiles, tile)

		if (i+1)%grid.Columns == 0 {
			pos.X = grid.Origin.X
			pos.Y += grid.TileSize
		} else {
			pos.X += grid.TileSize
		}
	}
}
