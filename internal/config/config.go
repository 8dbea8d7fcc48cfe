// Package config holds the timer constants and the user settings loaded from
// the config file and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Notifications NotificationConfig `mapstructure:"notifications"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SoundConfig holds the alarm played when an interval ends.
	SoundConfig struct {
		Alarm string `mapstructure:"alarm"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Colors    ColorConfig `mapstructure:"colors"`
		DarkTheme bool        `mapstructure:"dark_theme"`
	}

	// ColorConfig maps each session type to a hex colour.
	ColorConfig struct {
		Work       string `mapstructure:"work"`
		ShortBreak string `mapstructure:"short_break"`
		LongBreak  string `mapstructure:"long_break"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	LogConfig struct {
		Debug bool `mapstructure:"debug"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error

	// SessionType represents the type of timer session.
	SessionType string
)

const Version = "v1.0.0"

const (
	Work       SessionType = "Work session"
	ShortBreak SessionType = "Short break"
	LongBreak  SessionType = "Long break"
)

// SoundOff disables the alarm.
const SoundOff = "off"

// CycleLength is the number of work sessions in a full cycle.
const CycleLength = 4

// Durations are fixed and cannot be changed at runtime.
var Durations = map[SessionType]time.Duration{
	Work:       25 * time.Minute,
	ShortBreak: 5 * time.Minute,
	LongBreak:  15 * time.Minute,
}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Color returns the configured colour for a session type.
func (c *Config) Color(name SessionType) string {
	switch name {
	case ShortBreak:
		return c.Display.Colors.ShortBreak
	case LongBreak:
		return c.Display.Colors.LongBreak
	default:
		return c.Display.Colors.Work
	}
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Default returns the settings written to a fresh config file.
func Default() *Config {
	return &Config{
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Sound: SoundConfig{
			Alarm: "alarm",
		},
		Display: DisplayConfig{
			Colors: ColorConfig{
				Work:       "#E7305B",
				ShortBreak: "#12EAEA",
				LongBreak:  "#C492B1",
			},
			DarkTheme: true,
		},
	}
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"notifications=%t alarm=%q dark_theme=%t cmd=%q debug=%t",
		c.Notifications.Enabled,
		c.Sound.Alarm,
		c.Display.DarkTheme,
		c.Settings.Cmd,
		c.Log.Debug,
	)
}
