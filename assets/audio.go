package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/mlinden4/cs181g-unit3/config"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache PCM bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// SynthesizeTone renders tone as 16-bit little-endian stereo PCM: a square
// wave sweeping linearly between the two frequencies with a linear decay.
func SynthesizeTone(tone config.Tone, sampleRate int) []byte {
	n := int(tone.Duration * float64(sampleRate))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := tone.Volume * (1 - t)
		if phase >= 0.5 {
			v = -v
		}
		s := int16(v * math.MaxInt16 * 0.5)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
