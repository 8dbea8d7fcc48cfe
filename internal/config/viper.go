package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyNotificationsEnabled = "notifications.enabled"
	keyAlarmSound           = "sound.alarm"
	keyDarkTheme            = "display.dark_theme"
	keyWorkColor            = "display.colors.work"
	keyShortBreakColor      = "display.colors.short_break"
	keyLongBreakColor       = "display.colors.long_break"
	keySessionCmd           = "settings.cmd"
	keyLogDebug             = "log.debug"
)

// WithViperConfig returns an Option that loads configuration from the file
// at configPath. A file with the default settings is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault(keyNotificationsEnabled, d.Notifications.Enabled)
	v.SetDefault(keyAlarmSound, d.Sound.Alarm)
	v.SetDefault(keyDarkTheme, d.Display.DarkTheme)
	v.SetDefault(keyWorkColor, d.Display.Colors.Work)
	v.SetDefault(keyShortBreakColor, d.Display.Colors.ShortBreak)
	v.SetDefault(keyLongBreakColor, d.Display.Colors.LongBreak)
	v.SetDefault(keySessionCmd, d.Settings.Cmd)
	v.SetDefault(keyLogDebug, d.Log.Debug)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
