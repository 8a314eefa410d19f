// Package config handles portfolio configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/arliss/portfolio/internal/palette"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Preloader PreloaderConfig `yaml:"preloader"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Server    ServerConfig    `yaml:"server"`
	Audio     AudioConfig     `yaml:"audio"`
	Profile   ProfileConfig   `yaml:"profile"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PreloaderConfig holds the color sequence timing.
type PreloaderConfig struct {
	CycleDuration        time.Duration `yaml:"cycle_duration"`
	FinalDisplayDuration time.Duration `yaml:"final_display_duration"`
	TargetColor          string        `yaml:"target_color"`
	NotifyBeforeCommit   bool          `yaml:"notify_before_commit"`
	Seed                 uint64        `yaml:"seed"` // 0 = random
}

// TerminalConfig holds terminal host settings.
type TerminalConfig struct {
	FPS            int           `yaml:"fps"`
	ResizeDebounce time.Duration `yaml:"resize_debounce"`
	Plain          bool          `yaml:"plain"` // print instead of drawing full-screen
}

// ServerConfig holds web host settings.
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	GinMode string `yaml:"gin_mode"`
}

// AudioConfig holds the preloader tick sound settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float32 `yaml:"volume"`
}

// SocialLink is a named external profile.
type SocialLink struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// ProfileConfig holds the person shown on the landing view.
type ProfileConfig struct {
	Name    string       `yaml:"name"`
	Role    string       `yaml:"role"`
	Tagline string       `yaml:"tagline"`
	Socials []SocialLink `yaml:"socials"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Preloader: PreloaderConfig{
			CycleDuration:        350 * time.Millisecond,
			FinalDisplayDuration: 400 * time.Millisecond,
			TargetColor:          string(palette.Target),
			NotifyBeforeCommit:   true,
		},
		Terminal: TerminalConfig{
			FPS:            60,
			ResizeDebounce: 100 * time.Millisecond,
		},
		Server: ServerConfig{
			Addr:    ":8080",
			GinMode: "release",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Profile: ProfileConfig{
			Name:    "ARLISS",
			Role:    "Software Engineer",
			Tagline: "Web Design",
			Socials: []SocialLink{
				{Name: "GitHub", URL: "https://github.com/arliss"},
				{Name: "Email", URL: "mailto:hello@arliss.dev"},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would otherwise break the preloader or hosts.
func (c *Config) Validate() error {
	if c.Preloader.CycleDuration <= 0 {
		return fmt.Errorf("%w: preloader.cycle_duration must be positive, got %v", ErrInvalid, c.Preloader.CycleDuration)
	}
	if c.Preloader.FinalDisplayDuration <= 0 {
		return fmt.Errorf("%w: preloader.final_display_duration must be positive, got %v", ErrInvalid, c.Preloader.FinalDisplayDuration)
	}
	if _, ok := palette.Parse(c.Preloader.TargetColor); !ok {
		return fmt.Errorf("%w: preloader.target_color %q is not a hex color", ErrInvalid, c.Preloader.TargetColor)
	}
	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("%w: terminal.fps must be positive, got %d", ErrInvalid, c.Terminal.FPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %f", ErrInvalid, c.Audio.Volume)
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.gin_mode must be debug, release or test, got %q", ErrInvalid, c.Server.GinMode)
	}
	if c.Profile.Name == "" {
		return fmt.Errorf("%w: profile.name is empty", ErrInvalid)
	}
	return nil
}

// Target returns the configured target color in canonical form.
func (c *Config) Target() palette.Color {
	if t, ok := palette.Parse(c.Preloader.TargetColor); ok {
		return t
	}
	return palette.Target
}
