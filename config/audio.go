package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDeath
	SoundDoorOpen
	SoundDoorConfirm
	SoundMinigameWon
	SoundClick
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesized effect: a square wave sliding from
// StartHz to EndHz over Duration seconds.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Volume   float64
}

// SoundConfig maps sound IDs to the tones that voice them
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:        {StartHz: 330, EndHz: 660, Duration: 0.08, Volume: 0.6},
			SoundDeath:       {StartHz: 440, EndHz: 110, Duration: 0.3, Volume: 0.8},
			SoundDoorOpen:    {StartHz: 220, EndHz: 440, Duration: 0.15, Volume: 0.7},
			SoundDoorConfirm: {StartHz: 520, EndHz: 780, Duration: 0.12, Volume: 0.7},
			SoundMinigameWon: {StartHz: 440, EndHz: 1320, Duration: 0.45, Volume: 0.8},
			SoundClick:       {StartHz: 900, EndHz: 900, Duration: 0.03, Volume: 0.4},
		},
	}
}
