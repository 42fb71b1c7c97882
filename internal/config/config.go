package config

import (
	"fmt"
	"io"
	"time"

	"github.com/chrisconley/chronon/efmt"
	"github.com/chrisconley/chronon/timescale"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration of the chronon CLI.
// Values are populated from .chronon.yaml, CHRONON_* env vars, and CLI flags.
type Config struct {
	TimeScale        string `mapstructure:"time_scale"`
	Format           string `mapstructure:"format"`
	LeapSecondsFile  string `mapstructure:"leap_seconds_file"`
	WatchLeapSeconds bool   `mapstructure:"watch_leap_seconds"`
	UT1File          string `mapstructure:"ut1_file"`
	LogLevel         string `mapstructure:"log_level"`
	LogJSON          bool   `mapstructure:"log_json"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("time_scale", "UTC")
	viper.SetDefault("format", efmt.ISO8601Flex.String())
	viper.SetDefault("leap_seconds_file", "")
	viper.SetDefault("watch_leap_seconds", false)
	viper.SetDefault("ut1_file", "")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_json", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that names a scale, a layout or a level.
func (c Config) Validate() error {
	if _, err := timescale.Parse(c.TimeScale); err != nil {
		return fmt.Errorf("time_scale: %w", err)
	}
	if _, err := efmt.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.WatchLeapSeconds && c.LeapSecondsFile == "" {
		return fmt.Errorf("watch_leap_seconds requires leap_seconds_file")
	}
	return nil
}

// Scale returns the configured display scale. It assumes Validate passed.
func (c Config) Scale() timescale.TimeScale {
	ts, _ := timescale.Parse(c.TimeScale)
	return ts
}

// Layout returns the configured output format. It assumes Validate passed.
func (c Config) Layout() efmt.Format {
	f, _ := efmt.ParseFormat(c.Format)
	return f
}

// InitLogger installs the global zerolog logger writing to w.
func (c Config) InitLogger(w io.Writer) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if !c.LogJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
