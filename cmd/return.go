package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/almanac/internal/calendar"
)

var returnCmd = &cobra.Command{
	Use:   "return",
	Short: "Close the rift and snap back to the canonical timeline",
	Args:  cobra.NoArgs,
	RunE:  runReturn,
}

func init() {
	rootCmd.AddCommand(returnCmd)
}

func runReturn(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}
	if err := w.Return(); err != nil {
		return err
	}
	if err := w.Save(); err != nil {
		return err
	}
	fmt.Println(styleMuted.Render("You open a rift and step through."))
	fmt.Printf("You have returned to %s %s.\n",
		calendar.Format(w.Calendar, w.Moment.Date(w.Calendar), calendar.LongDate),
		styleAccent.Render(w.Moment.Clock(w.Calendar)))
	return nil
}
