// Package physics moves the player actor and resolves it against the
// static tiles of a level.
package physics

import "github.com/mlinden4/cs181g-unit3/shared/geom"

// Params tunes actor movement. Values are per tick.
type Params struct {
	HorizontalSpeed  float64
	JumpVelocity     float64
	Gravity          float64
	TerminalVelocity float64
}

// DefaultParams: 4px/tick run, 10px/tick jump.
var DefaultParams = Params{
	HorizontalSpeed:  4,
	JumpVelocity:     10,
	Gravity:          1,
	TerminalVelocity: 10,
}

// Actor is the player. Respawn is a sticky checkpoint that level logic moves
// forward as stages are cleared.
type Actor struct {
	Pos      geom.Vec2
	Vel      geom.Vec2
	Grounded bool
	Respawn  geom.Vec2
	Anim     Animator

	params Params
}

// NewActor places an actor at start, with respawn as its checkpoint.
func NewActor(start, respawn geom.Vec2, params Params, anim Animator) *Actor {
	return &Actor{
		Pos:     start,
		Respawn: respawn,
		Anim:    anim,
		params:  params,
	}
}

// Move applies one tick of input. horz and vert are axis values in
// [-1, 1]. It reports whether a jump started this tick.
func (a *Actor) Move(horz, vert float64) bool {
	a.Vel.X = horz * a.params.HorizontalSpeed

	jumped := false
	if vert > 0 && a.Grounded {
		a.Vel.Y = a.params.JumpVelocity
		a.Grounded = false
		jumped = true
	}

	if a.Vel.Y >= -a.params.TerminalVelocity {
		a.Vel.Y -= a.params.Gravity
	}

	a.Pos = a.Pos.Add(a.Vel)
	a.Anim.Update(horz, a.Grounded)
	return jumped
}

// Die sends the actor back to its checkpoint at rest.
func (a *Actor) Die() {
	a.Pos = a.Respawn
	a.Vel = geom.Vec2{}
	a.Grounded = false
}

// Reset moves the actor to start with no velocity.
func (a *Actor) Reset(start geom.Vec2) {
	a.Pos = start
	a.Vel = geom.Vec2{}
	a.Grounded = false
	a.Anim.Restart()
}

// Box returns the collision box around the actor's position.
func (a *Actor) Box(size geom.Vec2) geom.AABB {
	return geom.AABB{Center: a.Pos, Size: size}
}
