// Package geom holds the axis-aligned geometry shared by the platformer
// resolver and every minigame hit-test. It has no dependencies on
// ebitengine, donburi or resolv.
package geom

// Vec2 is a point or displacement in y-up world space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LengthSquared is used to order contacts, so the square root is never taken.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// ScreenToWorld maps a pointer position (top-left origin, y down) to world
// space (bottom-left origin, y up), undoing the camera offset and scale.
func ScreenToWorld(screen Vec2, screenHeight float64, camera Vec2, scale float64) Vec2 {
	if scale == 0 {
		scale = 1
	}
	return Vec2{
		X: (screen.X + camera.X) / scale,
		Y: ((screenHeight - screen.Y) + camera.Y) / scale,
	}
}
