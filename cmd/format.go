package cmd

import (
	"fmt"

	"github.com/chrisconley/chronon/efmt"
	"github.com/chrisconley/chronon/specs"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format EPOCH",
	Short: "Render an epoch with a layout",
	Long: `Render an epoch with a % layout. Directives: %Y %m %d %H %M %S %f %T %t
%j %J %A %a %B %b %w %z. A '?' after a directive makes it optional.
Predefined layouts: ISO8601, ISO8601Flex, ISO8601Date, ISO8601Ordinal,
RFC3339, RFC2822, RFC2822Long.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringP("layout", "l", "", "output layout or predefined layout name (default: configured format)")
	formatCmd.Flags().String("from", "", "layout EPOCH is written in")
	formatCmd.Flags().String("tz", "", "fixed timezone offset, e.g. +05:30")
	formatCmd.Flags().String("scale", "", "time scale to read the clock of (the layout needs %T or %t)")
	rootCmd.AddCommand(formatCmd)
}

var predefined = map[string]efmt.Format{
	"ISO8601":        efmt.ISO8601,
	"ISO8601Flex":    efmt.ISO8601Flex,
	"ISO8601Date":    efmt.ISO8601Date,
	"ISO8601Ordinal": efmt.ISO8601Ordinal,
	"RFC3339":        efmt.RFC3339,
	"RFC2822":        efmt.RFC2822,
	"RFC2822Long":    efmt.RFC2822Long,
}

// resolveLayout expands predefined layout names.
func resolveLayout(layout string) string {
	if f, ok := predefined[layout]; ok {
		return f.String()
	}
	return layout
}

func runFormat(cmd *cobra.Command, args []string) error {
	layout, _ := cmd.Flags().GetString("layout")
	from, _ := cmd.Flags().GetString("from")
	tz, _ := cmd.Flags().GetString("tz")
	scale, _ := cmd.Flags().GetString("scale")

	e, err := readEpoch(args[0], resolveLayout(from))
	if err != nil {
		return err
	}
	if layout == "" {
		layout = current.cfg.Format
	}
	out, err := efmt.FormatSpec(e.Spec(), specs.FormatSpec{
		Layout:    resolveLayout(layout),
		Timezone:  tz,
		TimeScale: scale,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
