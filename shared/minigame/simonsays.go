package minigame

import (
	"math/rand/v2"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/render"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Knob is one of the four Simon Says buttons.
type Knob int

const (
	KnobLeft Knob = iota
	KnobRight
	KnobTop
	KnobBottom
	knobCount
)

// SimonSaysConfig tunes pattern length and playback timing.
type SimonSaysConfig struct {
	Rounds     int
	LitSeconds float32
	GapSeconds float32
	FlashTicks int
	DimAlpha   float64
}

var DefaultSimonSays = SimonSaysConfig{
	Rounds:     5,
	LitSeconds: 0.5,
	GapSeconds: 0.25,
	FlashTicks: 8,
	DimAlpha:   0.35,
}

type knob struct {
	box    geom.AABB
	region render.Region
}

// SimonSays plays a growing pattern on four knobs that the player repeats
// by clicking. Playback runs on a tween timeline advanced each tick, so
// input and drawing never stall while it plays.
type SimonSays struct {
	Flags

	cfg      SimonSaysConfig
	rng      *rand.Rand
	knobs    [knobCount]knob
	pattern  []Knob
	next     int
	playback *gween.Sequence

	lit      Knob
	litLevel float32
	flash    int
	flashed  Knob
	mistakes int
}

// NewSimonSays lays the knobs out around the screen center and starts
// playing a one-knob pattern.
func NewSimonSays(cfg SimonSaysConfig, rng *rand.Rand) *SimonSays {
	w, h := Screen.X, Screen.Y
	s := &SimonSays{cfg: cfg, rng: rng, lit: -1, flashed: -1}
	s.knobs = [knobCount]knob{
		KnobLeft:   {geom.NewAABB(w/4, h/2, w/8, h/4), render.Region{Sheet: render.SheetMinigame, X: 1, Y: 0}},
		KnobRight:  {geom.NewAABB(3*w/4, h/2, w/8, h/4), render.Region{Sheet: render.SheetMinigame, X: 2, Y: 2}},
		KnobTop:    {geom.NewAABB(w/2, 3*h/4, w/8, h/4), render.Region{Sheet: render.SheetMinigame, X: 0, Y: 2}},
		KnobBottom: {geom.NewAABB(w/2, h/4, w/8, h/4), render.Region{Sheet: render.SheetMinigame, X: 2, Y: 0}},
	}
	s.restart()
	return s
}

func (s *SimonSays) randomKnob() Knob {
	return Knob(s.rng.IntN(int(knobCount)))
}

func (s *SimonSays) restart() {
	s.pattern = append(s.pattern[:0], s.randomKnob())
	s.play()
}

// play schedules the pattern: a lead-in gap, then for each knob a lit
// segment fading from full brightness followed by a gap.
func (s *SimonSays) play() {
	s.next = 0
	s.playback = gween.NewSequence()
	s.playback.Add(gween.New(0, 0, s.cfg.GapSeconds, ease.Linear))
	for range s.pattern {
		s.playback.Add(
			gween.New(1, 0, s.cfg.LitSeconds, ease.OutQuad),
			gween.New(0, 0, s.cfg.GapSeconds, ease.Linear),
		)
	}
}

// Playing reports whether the pattern is still being shown.
func (s *SimonSays) Playing() bool { return s.playback != nil }

// Pattern returns the current pattern.
func (s *SimonSays) Pattern() []Knob { return s.pattern }

// Progress is how many knobs of the pattern the player has repeated.
func (s *SimonSays) Progress() int { return s.next }

// Mistakes counts wrong clicks since the game started.
func (s *SimonSays) Mistakes() int { return s.mistakes }

// KnobBox returns the hit box of k.
func (s *SimonSays) KnobBox(k Knob) geom.AABB { return s.knobs[k].box }

func (s *SimonSays) Update(in Input) {
	if s.finished() {
		return
	}
	if in.Exit {
		s.abandon()
		return
	}
	if s.flash > 0 {
		s.flash--
	}

	if s.playback != nil {
		s.advancePlayback(in.DT)
		return
	}

	if !in.Click {
		return
	}
	for k := Knob(0); k < knobCount; k++ {
		if s.knobs[k].box.Contains(in.Pointer) {
			s.press(k)
			return
		}
	}
}

func (s *SimonSays) advancePlayback(dt float32) {
	value, _, done := s.playback.Update(dt)
	if done {
		s.playback = nil
		s.lit = -1
		return
	}
	idx := s.playback.Index()
	if idx >= 1 && (idx-1)%2 == 0 {
		s.lit = s.pattern[(idx-1)/2]
		s.litLevel = value
	} else {
		s.lit = -1
	}
}

func (s *SimonSays) press(k Knob) {
	s.flashed = k
	s.flash = s.cfg.FlashTicks

	if s.pattern[s.next] != k {
		s.mistakes++
		s.restart()
		return
	}

	s.next++
	if s.next < len(s.pattern) {
		return
	}
	if len(s.pattern) >= s.cfg.Rounds {
		s.complete()
		return
	}
	s.pattern = append(s.pattern, s.randomKnob())
	s.play()
}

func (s *SimonSays) Sprites() []render.Sprite {
	sprites := make([]render.Sprite, 0, knobCount)
	for k := Knob(0); k < knobCount; k++ {
		alpha := s.cfg.DimAlpha
		switch {
		case k == s.lit:
			alpha += (1 - s.cfg.DimAlpha) * float64(s.litLevel)
		case k == s.flashed && s.flash > 0:
			alpha = 1
		}
		sprites = append(sprites, render.Sprite{Box: s.knobs[k].box, Region: s.knobs[k].region, Alpha: alpha})
	}
	return sprites
}
