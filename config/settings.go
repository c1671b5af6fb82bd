package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultSettingsYAML []byte

// Settings is the YAML-overridable subset of the configuration. Unset
// fields keep their compiled-in defaults.
type Settings struct {
	Window struct {
		Scale *int `yaml:"scale"`
	} `yaml:"window"`
	Physics struct {
		HorizontalSpeed  *float64 `yaml:"horizontal_speed"`
		JumpVelocity     *float64 `yaml:"jump_velocity"`
		Gravity          *float64 `yaml:"gravity"`
		TerminalVelocity *float64 `yaml:"terminal_velocity"`
	} `yaml:"physics"`
	Audio struct {
		SFXVolume *float64 `yaml:"sfx_volume"`
	} `yaml:"audio"`
	Collision struct {
		Steps *int `yaml:"steps"`
	} `yaml:"collision"`
	SimonSays struct {
		Rounds     *int     `yaml:"rounds"`
		LitSeconds *float32 `yaml:"lit_seconds"`
		GapSeconds *float32 `yaml:"gap_seconds"`
	} `yaml:"simon_says"`
	Mining struct {
		CooldownTicks *int `yaml:"cooldown_ticks"`
	} `yaml:"mining"`
	Save struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"save"`
	Records struct {
		Path  *string `yaml:"path"`
		Limit *int    `yaml:"limit"`
	} `yaml:"records"`
}

// LoadSettings reads settings and reports where they came from.
// Search order: customPath -> ~/.cs181g/config.yaml -> ./configs/config.yaml -> embedded default
func LoadSettings(customPath string) (Settings, string, error) {
	var s Settings

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return s, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return s, customPath, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &s); err == nil {
				return s, userCfgPath, nil
			}
		}
	}

	localPath := filepath.Join("configs", "config.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if err := yaml.Unmarshal(data, &s); err == nil {
			return s, localPath, nil
		}
	}

	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		return Settings{}, "defaults", nil
	}
	return s, "embedded", nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cs181g", filename)
}

// Apply copies every set field onto the global configuration.
func (s Settings) Apply() {
	setInt(&C.Scale, s.Window.Scale)
	setFloat(&Physics.HorizontalSpeed, s.Physics.HorizontalSpeed)
	setFloat(&Physics.JumpVelocity, s.Physics.JumpVelocity)
	setFloat(&Physics.Gravity, s.Physics.Gravity)
	setFloat(&Physics.TerminalVelocity, s.Physics.TerminalVelocity)
	setFloat(&Audio.DefaultSFXVol, s.Audio.SFXVolume)
	setInt(&Collision.Steps, s.Collision.Steps)
	setInt(&Minigame.SimonSays.Rounds, s.SimonSays.Rounds)
	if s.SimonSays.LitSeconds != nil {
		Minigame.SimonSays.LitSeconds = *s.SimonSays.LitSeconds
	}
	if s.SimonSays.GapSeconds != nil {
		Minigame.SimonSays.GapSeconds = *s.SimonSays.GapSeconds
	}
	setInt(&Minigame.Mining.CooldownTicks, s.Mining.CooldownTicks)
	if s.Save.Enabled != nil {
		Save.Enabled = *s.Save.Enabled
	}
	if s.Records.Path != nil {
		Records.Path = *s.Records.Path
	}
	setInt(&Records.Limit, s.Records.Limit)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
