package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/chronicle"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Keep a chronicle of what happens in the world",
}

var recordAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Record a happening at the world's current date",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecordAdd,
}

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded happenings in chronological order",
	Args:  cobra.NoArgs,
	RunE:  runRecordList,
}

func init() {
	recordListCmd.Flags().String("from", "", "first day to include (date expression)")
	recordListCmd.Flags().String("to", "", "last day to include (date expression)")
	recordCmd.AddCommand(recordAddCmd, recordListCmd)
	rootCmd.AddCommand(recordCmd)
}

// chroniclePath keeps the chronicle database beside its world manifest.
func chroniclePath(manifestPath string) string {
	dir := filepath.Dir(manifestPath)
	base := strings.TrimSuffix(filepath.Base(manifestPath), filepath.Ext(manifestPath))
	return filepath.Join(dir, base+".chronicle.db")
}

func openChronicle(cmd *cobra.Command) (*chronicle.Store, error) {
	return chronicle.Open(cmd.Context(), chroniclePath(worldPath()))
}

func runRecordAdd(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}
	store, err := openChronicle(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	date := w.Moment.Date(w.Calendar)
	h, err := store.Record(cmd.Context(),
		date.AbsoluteDay(w.Calendar),
		calendar.Format(w.Calendar, date, calendar.LongDate),
		strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Printf("%s %s — %s\n", styleOK.Render("recorded"), styleMuted.Render(h.DateText), h.Body)
	return nil
}

func runRecordList(cmd *cobra.Command, args []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}
	store, err := openChronicle(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	var happenings []chronicle.Happening
	fromExpr, _ := cmd.Flags().GetString("from")
	toExpr, _ := cmd.Flags().GetString("to")
	if fromExpr == "" && toExpr == "" {
		happenings, err = store.All(cmd.Context())
	} else {
		from := int64(-1) << 62
		to := int64(1) << 62
		if fromExpr != "" {
			d, perr := calendar.ParseDate(w.Calendar, fromExpr)
			if perr != nil {
				return fmt.Errorf("--from: %w", perr)
			}
			from = d.AbsoluteDay(w.Calendar)
		}
		if toExpr != "" {
			d, perr := calendar.ParseDate(w.Calendar, toExpr)
			if perr != nil {
				return fmt.Errorf("--to: %w", perr)
			}
			to = d.AbsoluteDay(w.Calendar)
		}
		happenings, err = store.List(cmd.Context(), from, to)
	}
	if err != nil {
		return err
	}

	if len(happenings) == 0 {
		fmt.Println(styleMuted.Render("(nothing recorded)"))
		return nil
	}
	for _, h := range happenings {
		fmt.Printf("%s  %s\n", styleMuted.Render(h.DateText), h.Body)
	}
	return nil
}
