package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/solar"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List celestial events over a date range",
	Long: "Events scans rises, sets, phase boundaries and conjunctions in\n" +
		"ascending order. The range defaults to the thirty days from today;\n" +
		"--from and --to accept any date expression the calendar parses.",
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().String("from", "", "first day of the range (default today)")
	eventsCmd.Flags().String("to", "", "day after the last (default from + 30d)")
	eventsCmd.Flags().Float64("tolerance", solar.DefaultTolerance,
		"phase separation treated as conjunct for matched-period bodies")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}

	from := w.Moment.Date(w.Calendar)
	if expr, _ := cmd.Flags().GetString("from"); expr != "" {
		from, err = calendar.ParseDate(w.Calendar, expr)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
	}
	to := calendar.Add(w.Calendar, from, calendar.DaysDuration(30))
	if expr, _ := cmd.Flags().GetString("to"); expr != "" {
		to, err = calendar.ParseDate(w.Calendar, expr)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
	}
	tol, _ := cmd.Flags().GetFloat64("tolerance")

	scan := solar.Events(w.Solar, w.Calendar, from, to, solar.Options{Tolerance: tol})
	count := 0
	for {
		ev, ok := scan.Next()
		if !ok {
			break
		}
		fmt.Println(renderEvent(w.Calendar, ev))
		count++
	}
	if count == 0 {
		fmt.Println(styleMuted.Render("(quiet skies)"))
	}
	return nil
}
