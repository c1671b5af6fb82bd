package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/physics"
	"github.com/mlinden4/cs181g-unit3/shared/render"
	"github.com/yohamta/donburi/ecs"
)

// World space is y-up; screen space is y-down. Every box is flipped through
// screenRect before drawing.
func screenRect(screen *ebiten.Image, box geom.AABB) (x, y, w, h float32) {
	height := float64(screen.Bounds().Dy())
	return float32(box.Left()), float32(height - box.Top()), float32(box.Size.X), float32(box.Size.Y)
}

func fillBox(screen *ebiten.Image, box geom.AABB, clr color.Color) {
	x, y, w, h := screenRect(screen, box)
	vector.FillRect(screen, x, y, w, h, clr, false)
}

func outlineBox(screen *ebiten.Image, box geom.AABB, clr color.Color) {
	x, y, w, h := screenRect(screen, box)
	vector.FillRect(screen, x, y, w, 1, clr, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, clr, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, clr, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, clr, false) // Right
}

// withAlpha scales a color by a, keeping it premultiplied.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func regionColor(r render.Region) color.RGBA {
	if c, ok := cfg.Palette.Regions[cfg.RegionKey{X: r.X, Y: r.Y}]; ok {
		return c
	}
	return cfg.Palette.Fallback
}

// DrawSprites fills each sprite box with its region's palette color.
func DrawSprites(screen *ebiten.Image, sprites []render.Sprite) {
	for _, s := range sprites {
		fillBox(screen, s.Box, withAlpha(regionColor(s.Region), s.Opacity()))
	}
}

// DrawLevel renders every tile of the current level, colored by kind.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)

	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	if level.Current == nil {
		return
	}

	for _, tile := range level.Current.Tiles {
		clr, ok := cfg.Palette.Kinds[tile.Kind]
		if !ok {
			clr = cfg.Palette.Fallback
		}
		fillBox(screen, tile.Box, clr)
	}
}

// DrawActor renders the player as a box with an eye stripe that follows
// the animation frame.
func DrawActor(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Actor.First(ecs.World)
	if !ok {
		return
	}
	actor := components.Actor.Get(entry)

	size := geom.Vec2{X: cfg.Actor.DrawSize, Y: cfg.Actor.DrawSize}
	box := actor.Box(size)

	body := cfg.Palette.Actor
	if actor.Anim.Category() == physics.AnimAirborne {
		body = cfg.Palette.ActorAirborne
	}
	fillBox(screen, box, body)

	// Eye: shifts toward the facing side, bobs with the frame
	facing := actor.LastHorz
	switch actor.Anim.Category() {
	case physics.AnimWalkLeft:
		facing = -1
	case physics.AnimWalkRight:
		facing = 1
	}
	bob := float64(actor.Anim.Frame() % 2)
	eye := geom.NewAABB(
		box.Center.X+facing*size.X/4,
		box.Center.Y+size.Y/4-bob,
		size.X/4,
		size.Y/8,
	)
	fillBox(screen, eye, cfg.Black)
}
