package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tempus"
	"tempus/format"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] DATE",
	Short: "Convert a date between calendar representations",
	Long:  `Convert takes a date and prints it in every supported representation: calendar, ordinal, ISO week date and julian day`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("from", "iso", "input representation (iso|julian|ordinal)")
	convertCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type conversionPayload struct {
	Calendar string `json:"calendar"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Ordinal  int    `json:"ordinal"`
	ISOYear  int    `json:"iso_year"`
	ISOWeek  int    `json:"iso_week"`
	Weekday  string `json:"weekday"`
	Julian   int    `json:"julian_day"`
	Unix     int64  `json:"unix_midnight_utc"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	outputFormat, _ := cmd.Flags().GetString("format")

	date, err := readDate(args[0], from)
	if err != nil {
		return err
	}

	payload := describeDate(date)

	switch outputFormat {
	case "pretty":
		fmt.Printf("calendar:  %s\n", payload.Calendar)
		fmt.Printf("ordinal:   %d-%03d\n", payload.Year, payload.Ordinal)
		fmt.Printf("iso week:  %d-W%02d-%d\n", payload.ISOYear, payload.ISOWeek, date.Weekday().NumberFromMonday())
		fmt.Printf("weekday:   %s\n", payload.Weekday)
		fmt.Printf("julian:    %d\n", payload.Julian)
		fmt.Printf("unix:      %d\n", payload.Unix)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}

func readDate(arg, from string) (tempus.Date, error) {
	switch from {
	case "iso":
		return tempus.ParseDate(arg, format.ISO8601Date)
	case "julian":
		jd, err := strconv.Atoi(arg)
		if err != nil {
			return tempus.Date{}, fmt.Errorf("julian day must be an integer: %w", err)
		}
		return tempus.DateFromJulianDay(jd)
	case "ordinal":
		// year-ordinal, e.g. 2024-366
		var year, ordinal int
		if _, err := fmt.Sscanf(arg, "%d-%d", &year, &ordinal); err != nil {
			return tempus.Date{}, fmt.Errorf("ordinal date must look like 2024-366: %w", err)
		}
		return tempus.DateFromOrdinalDate(year, ordinal)
	default:
		return tempus.Date{}, fmt.Errorf("unknown input representation: %s", from)
	}
}

func describeDate(date tempus.Date) conversionPayload {
	year, month, day := date.CalendarDate()
	isoYear, isoWeek, _ := date.ISOWeekDate()
	return conversionPayload{
		Calendar: date.String(),
		Year:     year,
		Month:    int(month),
		Day:      day,
		Ordinal:  date.Ordinal(),
		ISOYear:  isoYear,
		ISOWeek:  isoWeek,
		Weekday:  date.Weekday().String(),
		Julian:   date.JulianDay(),
		Unix:     date.Midnight().AssumeUTC().UnixTimestamp(),
	}
}
