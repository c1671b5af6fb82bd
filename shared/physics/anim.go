package physics

// AnimCategory groups frames by what the actor is doing.
type AnimCategory int

const (
	AnimIdle AnimCategory = iota
	AnimWalkLeft
	AnimWalkRight
	AnimAirborne
)

// FrameRange is an inclusive run of frame indices on the actor sheet.
type FrameRange struct {
	First, Last int
}

// Animator picks the actor's sprite frame. Changing category always starts
// the new category from its first frame.
type Animator struct {
	Ranges        map[AnimCategory]FrameRange
	TicksPerFrame int

	category AnimCategory
	frame    int
	ticks    int
}

// DefaultFrames lays idle, walk left, walk right and airborne frames out
// left to right on one row.
var DefaultFrames = map[AnimCategory]FrameRange{
	AnimIdle:      {First: 0, Last: 3},
	AnimWalkLeft:  {First: 4, Last: 9},
	AnimWalkRight: {First: 10, Last: 15},
	AnimAirborne:  {First: 16, Last: 16},
}

// NewAnimator starts in the idle category.
func NewAnimator(ranges map[AnimCategory]FrameRange, ticksPerFrame int) Animator {
	if ticksPerFrame <= 0 {
		ticksPerFrame = 1
	}
	a := Animator{Ranges: ranges, TicksPerFrame: ticksPerFrame}
	a.Restart()
	return a
}

// CategoryFor derives the category from the horizontal input and whether
// the actor is standing on something.
func CategoryFor(horz float64, grounded bool) AnimCategory {
	switch {
	case !grounded:
		return AnimAirborne
	case horz < 0:
		return AnimWalkLeft
	case horz > 0:
		return AnimWalkRight
	}
	return AnimIdle
}

// Update advances one tick.
func (a *Animator) Update(horz float64, grounded bool) {
	next := CategoryFor(horz, grounded)
	if next != a.category {
		a.category = next
		a.frame = a.Ranges[next].First
		a.ticks = 0
		return
	}

	a.ticks++
	if a.ticks < a.TicksPerFrame {
		return
	}
	a.ticks = 0
	r := a.Ranges[a.category]
	a.frame++
	if a.frame > r.Last {
		a.frame = r.First
	}
}

// Restart returns to the first idle frame.
func (a *Animator) Restart() {
	a.category = AnimIdle
	a.frame = a.Ranges[AnimIdle].First
	a.ticks = 0
}

func (a *Animator) Frame() int { return a.frame }
func (a *Animator) Category() AnimCategory { return a.category }
