package geom

import "math"

// Epsilon is the penetration depth below which a contact is treated as
// resolved.
const Epsilon = 1e-6

// AABB is an axis-aligned box stored as a center and a full size.
type AABB struct {
	Center Vec2
	Size   Vec2
}

// NewAABB builds a box centered on (cx, cy) with width w and height h.
func NewAABB(cx, cy, w, h float64) AABB {
	return AABB{Center: Vec2{X: cx, Y: cy}, Size: Vec2{X: w, Y: h}}
}

// Half returns the half-extents.
func (b AABB) Half() Vec2 {
	return b.Size.Scale(0.5)
}

func (b AABB) Left() float64 { return b.Center.X - b.Size.X/2 }
func (b AABB) Right() float64 { return b.Center.X + b.Size.X/2 }
func (b AABB) Bottom() float64 { return b.Center.Y - b.Size.Y/2 }
func (b AABB) Top() float64 { return b.Center.Y + b.Size.Y/2 }

// Empty reports whether the box has no area. Removed minigame objects are
// shrunk to an empty box so they can no longer be hit.
func (b AABB) Empty() bool {
	return b.Size.X <= 0 || b.Size.Y <= 0
}

// Contains reports whether p lies inside b, edges included.
func (b AABB) Contains(p Vec2) bool {
	if b.Empty() {
		return false
	}
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Overlaps reports whether a and b share a region of positive area.
// Boxes that only touch along an edge do not overlap.
func Overlaps(a, b AABB) bool {
	_, ok := Displacement(a, b)
	return ok
}

// Displacement returns how deep b penetrates a on each axis. Both
// components are positive; callers orient them and choose an axis.
// ok is false when the boxes do not overlap.
func Displacement(a, b AABB) (Vec2, bool) {
	if a.Empty() || b.Empty() {
		return Vec2{}, false
	}
	x := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	y := math.Min(a.Top(), b.Top()) - math.Max(a.Bottom(), b.Bottom())
	if x <= 0 || y <= 0 {
		return Vec2{}, false
	}
	return Vec2{X: x, Y: y}, true
}

// MinimumTranslation returns the vector that moves b out of a along the
// axis of least penetration. Vertical wins ties.
func MinimumTranslation(a, b AABB) (Vec2, bool) {
	d, ok := Displacement(a, b)
	if !ok {
		return Vec2{}, false
	}
	if d.Y <= d.X {
		if b.Center.Y < a.Center.Y {
			return Vec2{Y: -d.Y}, true
		}
		return Vec2{Y: d.Y}, true
	}
	if b.Center.X < a.Center.X {
		return Vec2{X: -d.X}, true
	}
	return Vec2{X: d.X}, true
}

// IsDegenerate reports whether either axis of d is too small to resolve.
func IsDegenerate(d Vec2) bool {
	return math.Abs(d.X) < Epsilon || math.Abs(d.Y) < Epsilon
}

// Translate returns b moved by d.
func (b AABB) Translate(d Vec2) AABB {
	return AABB{Center: b.Center.Add(d), Size: b.Size}
}

// Union returns the smallest box containing both a and b.
func Union(a, b AABB) AABB {
	left := math.Min(a.Left(), b.Left())
	right := math.Max(a.Right(), b.Right())
	bottom := math.Min(a.Bottom(), b.Bottom())
	top := math.Max(a.Top(), b.Top())
	return NewAABB((left+right)/2, (bottom+top)/2, right-left, top-bottom)
}
