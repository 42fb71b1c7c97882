package cmd

import (
	"io"
	"time"

	"github.com/chrisconley/chronon/efmt"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/leapseconds"
	"github.com/chrisconley/chronon/timescale"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now [SCALE...]",
	Short: "Show the current epoch",
	Long: `Show the current epoch on the given time scales. With --every the
epoch is printed repeatedly until interrupted; when watch_leap_seconds is set
the leap second file is reloaded whenever it changes meanwhile.`,
	RunE: runNow,
}

func init() {
	nowCmd.Flags().Duration("every", 0, "print again at this interval until interrupted")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	every, _ := cmd.Flags().GetDuration("every")
	targets, err := scales(args, false)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	layout := current.cfg.Layout()
	if every <= 0 {
		return printNow(w, epoch.SystemClock{}, targets, layout)
	}

	if current.cfg.WatchLeapSeconds {
		watcher, err := leapseconds.NewWatcher(current.cfg.LeapSecondsFile, leapseconds.Default(), current.bus)
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()
		log.Info().Str("path", watcher.Path).Msg("watching leap second list")
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		if err := printNow(w, epoch.SystemClock{}, targets, layout); err != nil {
			return err
		}
		select {
		case <-cmd.Context().Done():
			return nil
		case <-ticker.C:
		}
	}
}

func printNow(w io.Writer, clock epoch.Clock, targets []timescale.TimeScale, layout efmt.Format) error {
	e, err := epoch.NowFrom(clock)
	if err != nil {
		return err
	}
	writeConversions(w, e, targets, layout)
	return nil
}
