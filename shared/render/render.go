// Package render is the contract between game logic and the drawing
// systems: each mode exposes a flat list of boxes tagged with the sheet
// region to draw in them.
package render

import "github.com/mlinden4/cs181g-unit3/shared/geom"

// Sheet identifies a sprite sheet.
type Sheet int

const (
	SheetTiles Sheet = iota
	SheetActor
	SheetMinigame
)

// Region selects a cell on a sheet.
type Region struct {
	Sheet Sheet
	X, Y  int
}

// Sprite is one box to draw, in y-up world coordinates.
type Sprite struct {
	Box    geom.AABB
	Region Region
	// Alpha is the draw opacity; zero means fully opaque.
	Alpha float64
}

// Opacity returns the effective alpha.
func (s Sprite) Opacity() float64 {
	if s.Alpha <= 0 || s.Alpha > 1 {
		return 1
	}
	return s.Alpha
}
