package config

import "github.com/mlinden4/cs181g-unit3/shared/physics"

type AnimationDef struct {
	First int
	Last  int
}

// ActorAnimations are the actor's frame runs per movement category.
var ActorAnimations = map[physics.AnimCategory]AnimationDef{
	physics.AnimIdle:      {First: 0, Last: 3},
	physics.AnimWalkLeft:  {First: 4, Last: 9},
	physics.AnimWalkRight: {First: 10, Last: 15},
	physics.AnimAirborne:  {First: 16, Last: 16},
}

// ActorTicksPerFrame is the shared frame rate of the actor animator.
var ActorTicksPerFrame = 6

// NewActorAnimator builds an animator from ActorAnimations.
func NewActorAnimator() physics.Animator {
	ranges := make(map[physics.AnimCategory]physics.FrameRange, len(ActorAnimations))
	for cat, def := range ActorAnimations {
		ranges[cat] = physics.FrameRange{First: def.First, Last: def.Last}
	}
	return physics.NewAnimator(ranges, ActorTicksPerFrame)
}
