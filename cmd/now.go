package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/solar"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the world's current date, time and skies",
	Args:  cobra.NoArgs,
	RunE:  runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}

	date := w.Moment.Date(w.Calendar)
	fmt.Println(styleTitle.Render(w.Name))
	if w.Jumped() {
		fmt.Println(styleMuted.Render("A sting in your temporal lobe indicates that this is not your native timeline..."))
	}
	fmt.Printf("%s  %s\n",
		calendar.Format(w.Calendar, date, calendar.LongDate),
		styleAccent.Render(w.Moment.Clock(w.Calendar)))
	fmt.Println(styleMuted.Render(calendar.Format(w.Calendar, date, calendar.CanonicalDate)))

	t := float64(w.Moment.Seconds) / float64(w.Calendar.Day().SecondsPerDay())
	for _, b := range w.Solar.Bodies() {
		if b.Kind != solar.KindSatellite {
			continue
		}
		phase := solar.PhaseOf(solar.PhaseFraction(b, t))
		fmt.Printf("%s %s: %s — %s\n", phase.Glyph(), b.Name, phase, styleMuted.Render(phase.Describe()))
	}
	return nil
}
