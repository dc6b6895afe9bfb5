package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/almanac/internal/solar"
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the world's celestial bodies and their current phases",
	Args:  cobra.NoArgs,
	RunE:  runBodies,
}

func init() {
	rootCmd.AddCommand(bodiesCmd)
}

func runBodies(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}

	t := float64(w.Moment.Seconds) / float64(w.Calendar.Day().SecondsPerDay())
	for _, b := range w.Solar.Bodies() {
		frac := solar.PhaseFraction(b, t)
		switch b.Kind {
		case solar.KindPrimary:
			fmt.Printf("%s  %s  period %dd, %.0f%% through its cycle\n",
				styleAccent.Render("☀"), styleTitle.Render(b.Name), b.PeriodDays, frac*100)
		case solar.KindSatellite:
			phase := solar.PhaseOf(frac)
			fmt.Printf("%s  %s  period %dd, %s\n",
				phase.Glyph(), styleTitle.Render(b.Name), b.PeriodDays, phase)
			fmt.Printf("    %s\n", styleMuted.Render(phase.Describe()))
		}
	}
	return nil
}
