package config

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/ayoisaiah/meow/internal/static"
)

var (
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	for _, name := range []SessionType{Work, ShortBreak, LongBreak} {
		if color := c.Color(name); !hexColorRegex.MatchString(color) {
			return errInvalidColor.Fmt(strings.ToLower(string(name)), color)
		}
	}

	return validateSound(c.Sound.Alarm)
}

// validateSound accepts "off", the name of a built-in sound, or a path to a
// file in a supported audio format.
func validateSound(sound string) error {
	if sound == "" || sound == SoundOff {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))
	if ext == "" {
		if !slices.Contains(static.Sounds(), sound) {
			return errUnknownAlarmSound.Fmt(sound)
		}

		return nil
	}

	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	return nil
}
