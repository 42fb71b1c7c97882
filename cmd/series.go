package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/chrisconley/chronon/efmt"
	"github.com/chrisconley/chronon/specs"
	"github.com/chrisconley/chronon/timeseries"
	"github.com/spf13/cobra"
)

var seriesCmd = &cobra.Command{
	Use:   "series START END STEP",
	Short: "List evenly spaced epochs",
	Long: `List START, START+STEP, ... stopping before END, or at END with
--inclusive. STEP is a duration such as "2 h" or "90 s".`,
	Example: `  chronon series "2017-01-14T00:00:00 UTC" "2017-01-14T12:00:00 UTC" "2 h" --inclusive`,
	Args:    cobra.ExactArgs(3),
	RunE:    runSeries,
}

func init() {
	seriesCmd.Flags().Bool("inclusive", false, "include END when a step lands on it")
	seriesCmd.Flags().Bool("reverse", false, "list from the last epoch back to START")
	seriesCmd.Flags().Bool("count", false, "only print how many epochs the series holds")
	seriesCmd.Flags().Bool("json", false, "write epoch specs as JSON")
	rootCmd.AddCommand(seriesCmd)
}

func runSeries(cmd *cobra.Command, args []string) error {
	inclusive, _ := cmd.Flags().GetBool("inclusive")
	reverse, _ := cmd.Flags().GetBool("reverse")
	count, _ := cmd.Flags().GetBool("count")
	asJSON, _ := cmd.Flags().GetBool("json")

	spec, err := specs.NewTimeSeriesSpec(
		specs.NewEpochSpec(args[0], ""),
		specs.NewEpochSpec(args[1], ""),
		specs.NewDurationSpec(args[2]),
		inclusive,
	)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if asJSON {
		out, err := timeseries.Series(spec)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	ts, err := timeseries.FromSpec(spec)
	if err != nil {
		return err
	}
	if count {
		fmt.Fprintln(w, ts.Len())
		return nil
	}
	values := ts.All()
	if reverse {
		values = ts.Backward()
	}
	layout := current.cfg.Layout()
	for e := range values {
		fmt.Fprintln(w, efmt.New(e, layout))
	}
	return nil
}
