package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chrisconley/chronon/efmt"
	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/timescale"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert EPOCH [SCALE...]",
	Short: "Show an epoch on other time scales",
	Long: `Show an epoch on each of the given time scales, or on the configured
display scale when none is given. EPOCH is read as "2015-02-07T11:22:33 UTC",
"MJD 51544.5 TAI", "JD 2451545.0 TT" or "SEC 0 TDB" unless --from gives a layout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("from", "", "layout EPOCH is written in")
	convertCmd.Flags().Bool("all", false, "show every time scale")
	convertCmd.Flags().Bool("ut1", false, "also show UT1 (needs ut1_file)")
	convertCmd.Flags().Bool("json", false, "write epoch specs as JSON")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	all, _ := cmd.Flags().GetBool("all")
	withUT1, _ := cmd.Flags().GetBool("ut1")
	asJSON, _ := cmd.Flags().GetBool("json")

	e, err := readEpoch(args[0], from)
	if err != nil {
		return err
	}
	targets, err := scales(args[1:], all)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if asJSON {
		return writeConversionsJSON(w, e, targets)
	}
	writeConversions(w, e, targets, current.cfg.Layout())
	if withUT1 {
		if current.ut1 == nil {
			return fmt.Errorf("--ut1 needs ut1_file to be configured")
		}
		reading, err := e.ToUT1(current.ut1)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-5s %s\n", "UT1", reading.ToGregorian(timescale.TAI).String())
	}
	return nil
}

// readEpoch parses s with layout, or as a free form epoch string when
// layout is empty.
func readEpoch(s, layout string) (epoch.Epoch, error) {
	if layout == "" {
		return epoch.Parse(s)
	}
	return efmt.ParseLayout(s, layout)
}

func scales(names []string, all bool) ([]timescale.TimeScale, error) {
	if all {
		return timescale.All, nil
	}
	if len(names) == 0 {
		return []timescale.TimeScale{current.cfg.Scale()}, nil
	}
	out := make([]timescale.TimeScale, 0, len(names))
	for _, name := range names {
		ts, err := timescale.Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

func writeConversions(w io.Writer, e epoch.Epoch, targets []timescale.TimeScale, layout efmt.Format) {
	for _, ts := range targets {
		fmt.Fprintf(w, "%-5s %s\n", ts, efmt.New(e, layout).InTimeScale(ts))
	}
}

func writeConversionsJSON(w io.Writer, e epoch.Epoch, targets []timescale.TimeScale) error {
	out := make([]any, 0, len(targets))
	for _, ts := range targets {
		spec, err := epoch.Convert(e.Spec(), ts.String())
		if err != nil {
			return err
		}
		out = append(out, spec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
