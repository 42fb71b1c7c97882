package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chrisconley/chronon/duration"
	"github.com/spf13/cobra"
)

var durationCmd = &cobra.Command{
	Use:   "duration EXPR...",
	Short: "Parse and normalise a duration",
	Long: `Parse a duration such as "1 d 15.5 hours 25 ns" or "-05:30" and print it
normalised. --unit prints it as a number of that unit instead.`,
	Example: `  chronon duration 90 min
  chronon duration --unit s 1 d
  chronon duration --round "1 s" 2 min 3.6 s
  chronon duration -- -05:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDuration,
}

func init() {
	durationCmd.Flags().String("unit", "", "print as a number of this unit (d, h, min, s, ms, us, ns)")
	durationCmd.Flags().String("round", "", "round to a multiple of this duration first")
	durationCmd.Flags().Bool("exp", false, "print in the most readable single unit")
	durationCmd.Flags().Bool("parts", false, "print the sign and every unit count")
	rootCmd.AddCommand(durationCmd)
}

func runDuration(cmd *cobra.Command, args []string) error {
	unit, _ := cmd.Flags().GetString("unit")
	round, _ := cmd.Flags().GetString("round")
	exp, _ := cmd.Flags().GetBool("exp")
	parts, _ := cmd.Flags().GetBool("parts")

	d, err := duration.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if round != "" {
		step, err := duration.Parse(round)
		if err != nil {
			return fmt.Errorf("invalid --round: %w", err)
		}
		d = d.Round(step)
	}

	w := cmd.OutOrStdout()
	switch {
	case unit != "":
		u, err := duration.ParseUnit(unit)
		if err != nil {
			return fmt.Errorf("invalid --unit: %w", err)
		}
		fmt.Fprintln(w, strconv.FormatFloat(d.ToUnit(u), 'f', -1, 64))
	case exp:
		fmt.Fprintln(w, d.Exp())
	case parts:
		p := d.Decompose()
		fmt.Fprintf(w, "sign=%d days=%d hours=%d minutes=%d seconds=%d ms=%d us=%d ns=%d\n",
			p.Sign, p.Days, p.Hours, p.Minutes, p.Seconds, p.Milliseconds, p.Microseconds, p.Nanoseconds)
	default:
		fmt.Fprintln(w, d)
	}
	return nil
}
