package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tempus"
	"tempus/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] VALUE",
	Short: "Format a date or date-time with a format description",
	Long: `Fmt reads an ISO 8601 date or date-time and renders it through the given
format description. The description comes from --desc or from the [format]
table of a tempus.toml found in a parent directory`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().String("desc", "", "format description")
	fmtCmd.Flags().Int("lang-version", 2, "format description language version (1|2)")
	fmtCmd.Flags().Bool("strftime", false, "treat the description as a strftime specification")
}

func runFmt(cmd *cobra.Command, args []string) error {
	desc, _ := cmd.Flags().GetString("desc")
	langVersion, _ := cmd.Flags().GetInt("lang-version")
	strftime, _ := cmd.Flags().GetBool("strftime")

	desc, langVersion, strftime, err := resolveDescription(desc, langVersion, strftime)
	if err != nil {
		return err
	}
	items, err := compileDescription(desc, langVersion, strftime)
	if err != nil {
		return err
	}

	out, err := formatValue(args[0], items)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// formatValue parses the input as a date-time first and falls back to a bare
// date at midnight UTC.
func formatValue(input string, items []format.Item) (string, error) {
	if dt, err := tempus.ParsePrimitiveDateTime(input, format.ISO8601DateTime); err == nil {
		return dt.AssumeUTC().Format(items)
	}
	date, err := tempus.ParseDate(input, format.ISO8601Date)
	if err != nil {
		return "", fmt.Errorf("input is neither an ISO date-time nor an ISO date: %w", err)
	}
	return date.Midnight().AssumeUTC().Format(items)
}
