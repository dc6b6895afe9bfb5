package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/almanac/internal/calendar"
)

var advanceCmd = &cobra.Command{
	Use:   "advance <expression>",
	Short: "Move the world forward (or back) in time",
	Long: "Advance moves the world's clock by a duration (\"2d\", \"1y 3 months\"),\n" +
		"to a date (\"1101-02-12\", \"the 3rd day of the 2nd month\"), to a time of\n" +
		"day (\"8am\", \"midday\"), or through a rest (\"long rest\", \"short rest\").\n" +
		"With --jump the current moment is anchored first; 'almanac return'\n" +
		"snaps back to it.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAdvance,
}

func init() {
	advanceCmd.Flags().Bool("jump", false, "open a rift: anchor the current moment before moving")
	rootCmd.AddCommand(advanceCmd)
}

func runAdvance(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}
	expr := strings.Join(args, " ")

	before := w.Moment
	after, err := before.Advance(w.Calendar, expr)
	if err != nil {
		return fmt.Errorf("advance %q: %w", expr, err)
	}
	if jump, _ := cmd.Flags().GetBool("jump"); jump {
		w.Jump()
		fmt.Println(styleMuted.Render("You open a rift and step through."))
	}
	w.Moment = after
	if err := w.Save(); err != nil {
		return err
	}
	log.Debug("advanced",
		zap.String("expr", expr),
		zap.Int64("from_seconds", before.Seconds),
		zap.Int64("to_seconds", after.Seconds))

	fmt.Printf("%s %s  %s\n",
		styleMuted.Render(calendar.Format(w.Calendar, before.Date(w.Calendar), calendar.CanonicalDate)+" "+before.Clock(w.Calendar)+" →"),
		calendar.Format(w.Calendar, after.Date(w.Calendar), calendar.LongDate),
		styleAccent.Render(after.Clock(w.Calendar)))
	return nil
}
