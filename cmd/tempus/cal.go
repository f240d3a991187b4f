package main

import (
	"fmt"
	"os"
	stdtime "time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tempus"
	"tempus/format"
	"tempus/internal/ui"
)

var calCmd = &cobra.Command{
	Use:   "cal [flags]",
	Short: "Browse a month calendar interactively",
	Long:  `Cal opens an interactive month view. Arrow keys move the selection, pgup/pgdn change months, t jumps to today and q quits; the selected date is printed on exit`,
	Args:  cobra.NoArgs,
	RunE:  runCal,
}

func init() {
	calCmd.Flags().String("date", "", "initial date (ISO 8601, defaults to today)")
}

func runCal(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("cal needs an interactive terminal")
	}

	today := systemToday()
	start := today
	if arg, _ := cmd.Flags().GetString("date"); arg != "" {
		parsed, err := tempus.ParseDate(arg, format.ISO8601Date)
		if err != nil {
			return err
		}
		start = parsed
	}

	model := ui.NewCalendarModel(start, today)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if cal, ok := final.(ui.CalendarModel); ok {
		fmt.Fprintln(cmd.OutOrStdout(), cal.Selected())
	}
	return nil
}

// systemToday reads the wall clock; it is the only place the library types
// meet the system clock.
func systemToday() tempus.Date {
	y, m, d := stdtime.Now().Date()
	date, err := tempus.NewDate(y, tempus.Month(m), d)
	if err != nil {
		return tempus.UnixEpochDate
	}
	return date
}
