// Package leveldata parses level resources into typed collision tiles.
// It has no dependencies on ebitengine, donburi, or resolv, so the game and
// the command line tools share it.
package leveldata

import "github.com/mlinden4/cs181g-unit3/shared/geom"

// TexCoord is a cell position on the tile sheet.
type TexCoord struct {
	X, Y int
}

// Kind is the collision behavior attached to a tile at load time.
type Kind int

const (
	KindSolid Kind = iota
	KindHalfTop
	KindHalfBottom
	KindDoor
	KindLethal
	KindDecorative
)

var kindNames = map[Kind]string{
	KindSolid:      "solid",
	KindHalfTop:    "halftop",
	KindHalfBottom: "halfbottom",
	KindDoor:       "door",
	KindLethal:     "lethal",
	KindDecorative: "decorative",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a kind name (as used in TMX tile properties) to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindSolid, false
}

// Tile is one placed grid cell.
type Tile struct {
	Box  geom.AABB
	Tex  TexCoord
	Kind Kind
}

// Collides reports whether the resolver pushes the actor out of this tile.
// Lethal tiles are handled by the resolver before this check.
func (t Tile) Collides() bool {
	switch t.Kind {
	case KindSolid, KindHalfTop, KindHalfBottom:
		return true
	}
	return false
}

// Grid describes how cells are placed: left to right from Origin, wrapping
// upward after Columns cells.
type Grid struct {
	TileSize float64
	Columns  int
	Origin   geom.Vec2
}

// DefaultGrid is 32px tiles, 10 per row, starting at (16,16).
var DefaultGrid = Grid{
	TileSize: 32,
	Columns:  10,
	Origin:   geom.Vec2{X: 16, Y: 16},
}

// Level is the ordered tile list of one level resource plus the positions
// of its door tiles within that list.
type Level struct {
	ID    int
	Tiles []Tile
	Doors []int
}

// IsDoor reports whether the tile at idx is a registered door.
func (l *Level) IsDoor(idx int) bool {
	for _, d := range l.Doors {
		if d == idx {
			return true
		}
	}
	return false
}

// DoorBoxes returns the boxes of every door tile.
func (l *Level) DoorBoxes() []geom.AABB {
	boxes := make([]geom.AABB, 0, len(l.Doors))
	for _, d := range l.Doors {
		boxes = append(boxes, l.Tiles[d].Box)
	}
	return boxes
}
