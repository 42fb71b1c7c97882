package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chrisconley/chronon/internal/config"
	"github.com/chrisconley/chronon/internal/infra"
	"github.com/chrisconley/chronon/leapseconds"
	"github.com/chrisconley/chronon/ut1"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:               "chronon",
	Short:             "Convert, parse and format epochs across time scales",
	Long:              "Chronon converts instants between TAI, TT, TDB, ET, UTC and the GNSS time scales with nanosecond precision over millennia.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// session is what setup prepares for the subcommands.
type session struct {
	cfg config.Config
	bus *infra.Bus
	ut1 *ut1.Provider
}

var current session

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .chronon.yaml)")
	flags.String("time-scale", "", "display time scale (TAI, TT, TDB, ET, UTC, GPST, GST, BDT, QZSST)")
	flags.String("format", "", "output layout, e.g. \"%Y-%m-%dT%H:%M:%S.%f? %T?\"")
	flags.String("leap-seconds-file", "", "IERS leap-seconds.list to use instead of the built-in table")
	flags.String("ut1-file", "", "TOML file of TAI - UT1 records")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")

	for key, flag := range map[string]string{
		"time_scale":        "time-scale",
		"format":            "format",
		"leap_seconds_file": "leap-seconds-file",
		"ut1_file":          "ut1-file",
		"log_level":         "log-level",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".chronon")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("CHRONON")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// setup loads the configuration, installs the logger and reads the leap
// second and UT1 files the configuration names.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.InitLogger(cmd.ErrOrStderr())

	current = session{cfg: cfg, bus: infra.NewBus()}
	current.bus.Subscribe(infra.LeapSecondsExpired, func(e infra.Event) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s has expired, conversions after its expiry may miss leap seconds\n", e.(leapseconds.Expired).Path)
	})

	if cfg.LeapSecondsFile != "" {
		if err := leapseconds.Install(leapseconds.Default(), cfg.LeapSecondsFile, current.bus); err != nil {
			return err
		}
	}
	if cfg.UT1File != "" {
		p, err := ut1.LoadFile(cfg.UT1File, current.bus)
		if err != nil {
			return err
		}
		current.ut1 = p
	}
	log.Debug().Str("command", cmd.Name()).Str("time_scale", cfg.TimeScale).Msg("configured")
	return nil
}
