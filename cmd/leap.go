package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chrisconley/chronon/epoch"
	"github.com/chrisconley/chronon/leapseconds"
	"github.com/spf13/cobra"
)

var leapCmd = &cobra.Command{
	Use:   "leap",
	Short: "Show the TAI - UTC table in use",
	Long: `Show the announced leap seconds of the table in use: the built-in one, or
leap_seconds_file when configured. --at prints TAI - UTC at one epoch.`,
	Args: cobra.NoArgs,
	RunE: runLeap,
}

func init() {
	leapCmd.Flags().String("at", "", "print TAI - UTC at this epoch")
	leapCmd.Flags().Bool("all", false, "include the fractional pre-1972 offsets")
	leapCmd.Flags().Bool("json", false, "write the table as JSON")
	rootCmd.AddCommand(leapCmd)
}

func runLeap(cmd *cobra.Command, _ []string) error {
	at, _ := cmd.Flags().GetString("at")
	all, _ := cmd.Flags().GetBool("all")
	asJSON, _ := cmd.Flags().GetBool("json")

	w := cmd.OutOrStdout()
	table := leapseconds.Default().Load()
	switch {
	case at != "":
		e, err := epoch.Parse(at)
		if err != nil {
			return err
		}
		lookup := table.Lookup
		if all {
			lookup = table.LookupAll
		}
		r, ok := lookup(e.TAIDuration())
		if !ok {
			return fmt.Errorf("no TAI - UTC offset is defined at %s", e)
		}
		fmt.Fprintf(w, "%s s\n", r.Offset.DecimalSeconds())
		return nil
	case asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(epoch.LeapSecondTableSpec(table))
	default:
		writeLeapTable(w, table, all)
		return nil
	}
}

func writeLeapTable(w io.Writer, table *leapseconds.Table, all bool) {
	spec := epoch.LeapSecondTableSpec(table)
	for _, r := range spec.Records {
		if r.Announced || all {
			fmt.Fprintf(w, "%s  %s s\n", r.UTC, r.Offset)
		}
	}
	if spec.Expires != "" {
		fmt.Fprintf(w, "expires %s\n", spec.Expires)
	}
}
