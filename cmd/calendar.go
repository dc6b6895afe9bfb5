package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/almanac/internal/calendar"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Print a month grid",
	Long: "With no arguments, prints the current month with today highlighted.\n" +
		"A month may be given by name or number, optionally with a year.",
	Args: cobra.MaximumNArgs(2),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}

	today := w.Moment.Date(w.Calendar)
	year := today.Year()
	month := today.Month()

	if len(args) > 0 {
		m, err := resolveMonth(w.Calendar, args[0])
		if err != nil {
			return err
		}
		month = m
	}
	if len(args) > 1 {
		y, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad year %q: %w", args[1], err)
		}
		year = y
	}

	mark := int64(0)
	if year == today.Year() && month == today.Month() {
		mark = today.Day()
	}
	fmt.Print(renderMonth(w.Calendar, year, month, mark))
	return nil
}

func resolveMonth(cal *calendar.Schema, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > cal.MonthsInYear() {
			return 0, fmt.Errorf("month %d out of range 1..%d", n, cal.MonthsInYear())
		}
		return n, nil
	}
	for i, m := range cal.Months() {
		if strings.EqualFold(m.Name, arg) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", arg)
}
