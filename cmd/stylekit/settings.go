package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/stylekit/internal/engine"
	"github.com/alexisbeaulieu97/stylekit/internal/validation"
)

const envPrefix = "STYLEKIT"

// settings are the CLI knobs. Sources, lowest precedence first: defaults,
// the --settings file, STYLEKIT_* environment variables, flags.
type settings struct {
	LogLevel      string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	HumanReadable bool   `mapstructure:"human_readable" yaml:"human_readable"`
	CacheSize     int    `mapstructure:"cache_size" yaml:"cache_size" validate:"min=1"`
	Format        string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=text json yaml preview"`
	Mobile        bool   `mapstructure:"mobile" yaml:"mobile"`
	ShowClasses   bool   `mapstructure:"show_classes" yaml:"show_classes"`
}

// settingFlags maps settings keys to the flag names bound to them.
var settingFlags = map[string]string{
	"log_level":      "log-level",
	"human_readable": "human",
	"cache_size":     "cache-size",
	"format":         "format",
	"mobile":         "mobile",
	"show_classes":   "show-classes",
}

func defaultSettings() settings {
	return settings{
		LogLevel:      "warn",
		HumanReadable: true,
		CacheSize:     engine.DefaultCacheSize,
	}
}

func loadSettings(cmd *cobra.Command, path string) (settings, error) {
	v := viper.New()

	defaults := defaultSettings()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("human_readable", defaults.HumanReadable)
	v.SetDefault("cache_size", defaults.CacheSize)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("mobile", defaults.Mobile)
	v.SetDefault("show_classes", defaults.ShowClasses)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range settingFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return settings{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))

	if err := validation.Struct("settings", s); err != nil {
		return settings{}, err
	}
	return s, nil
}
