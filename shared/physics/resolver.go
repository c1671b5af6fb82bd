package physics

import (
	"math"
	"sort"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/leveldata"
)

// Contact is one overlapping tile found during a resolution pass.
type Contact struct {
	Index int
	Disp  geom.Vec2
}

// Resolver pushes the actor out of solid tiles.
type Resolver struct {
	Steps      int
	HitboxSize geom.Vec2

	contacts []Contact
}

// Result summarises one Resolve call.
type Result struct {
	Passes   int
	Contacts int
	Died     bool
	Landed   bool
}

// NewResolver returns a resolver running steps passes with the given
// actor hitbox.
func NewResolver(steps int, hitbox geom.Vec2) *Resolver {
	return &Resolver{Steps: steps, HitboxSize: hitbox}
}

// Resolve corrects the actor's position and velocity against level. Each
// pass resolves the deepest contact first. Only the actor moves.
func (r *Resolver) Resolve(actor *Actor, level *leveldata.Level) Result {
	var res Result
	for pass := 0; pass < r.Steps; pass++ {
		box := actor.Box(r.HitboxSize)
		r.contacts = r.contacts[:0]
		for i, tile := range level.Tiles {
			if d, ok := geom.Displacement(tile.Box, box); ok {
				r.contacts = append(r.contacts, Contact{Index: i, Disp: d})
			}
		}
		if len(r.contacts) == 0 {
			break
		}

		res.Passes++
		res.Contacts += len(r.contacts)
		sort.SliceStable(r.contacts, func(i, j int) bool {
			return r.contacts[i].Disp.LengthSquared() > r.contacts[j].Disp.LengthSquared()
		})

		for _, c := range r.contacts {
			if !r.resolveContact(actor, level, c.Index, &res) {
				break
			}
		}
	}
	return res
}

// resolveContact handles a single contact. It returns false when the rest
// of the pass should be skipped.
func (r *Resolver) resolveContact(actor *Actor, level *leveldata.Level, idx int, res *Result) bool {
	tile := level.Tiles[idx]
	if level.IsDoor(idx) || tile.Kind == leveldata.KindDecorative {
		return true
	}
	if tile.Kind == leveldata.KindLethal {
		actor.Die()
		res.Died = true
		return true
	}

	// The actor may have moved since contacts were collected.
	disp, ok := geom.Displacement(tile.Box, actor.Box(r.HitboxSize))
	if !ok {
		disp = geom.Vec2{}
	}
	if geom.IsDegenerate(disp) {
		return false
	}

	if actor.Pos.Y < tile.Box.Center.Y {
		disp.Y = -disp.Y
	}
	if actor.Pos.X < tile.Box.Center.X {
		disp.X = -disp.X
	}

	if math.Abs(disp.Y) <= math.Abs(disp.X) {
		falling := actor.Vel.Y <= 0
		actor.Pos.Y += disp.Y
		actor.Vel.Y = 0
		if disp.Y > 0 && falling {
			actor.Grounded = true
			res.Landed = true
		}
	} else {
		actor.Pos.X += disp.X
		actor.Vel.X = 0
	}
	return true
}
