package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/almanac/internal/calendar"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Resolve a date or duration expression without moving time",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}
	expr := strings.Join(args, " ")

	res, err := calendar.Parse(w.Calendar, expr)
	if err != nil {
		return err
	}
	switch res.Kind {
	case calendar.ResultDate:
		fmt.Printf("%s %s\n", styleMuted.Render("date:"),
			calendar.Format(w.Calendar, res.Date, calendar.CanonicalDate))
		fmt.Printf("%s %s\n", styleMuted.Render("      "),
			calendar.Format(w.Calendar, res.Date, calendar.LongDate))
		fmt.Printf("%s %d\n", styleMuted.Render("  day:"), res.Date.AbsoluteDay(w.Calendar))
	case calendar.ResultDuration:
		fmt.Printf("%s %s\n", styleMuted.Render("duration:"), calendar.FormatDuration(res.Duration))
		landing := calendar.Add(w.Calendar, w.Moment.Date(w.Calendar), res.Duration)
		fmt.Printf("%s %s\n", styleMuted.Render("   lands:"),
			calendar.Format(w.Calendar, landing, calendar.LongDate))
	}
	return nil
}
