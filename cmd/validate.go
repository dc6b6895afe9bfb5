package cmd

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/almanac/internal/calendar"
	"github.com/papapumpkin/almanac/internal/solar"
	"github.com/papapumpkin/almanac/internal/world"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a world manifest and report every problem at once",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := viper.GetString("world")
	if len(args) > 0 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var m world.Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	failed := false

	if _, err := calendar.Validate(m.Calendar); err != nil {
		failed = true
		if schemaErr, ok := err.(*calendar.SchemaError); ok {
			errs := make([]error, len(schemaErr.Violations))
			for i, v := range schemaErr.Violations {
				errs[i] = v
			}
			fmt.Println(renderViolations("calendar", errs))
		} else {
			fmt.Println(renderErr(err))
		}
	} else {
		fmt.Println(styleOK.Render("✓ calendar") + styleMuted.Render(fmt.Sprintf(" — %d month(s), %d weekday(s)",
			len(m.Calendar.Months), len(m.Calendar.Weekdays))))
	}

	if _, err := solar.Validate(m.Solar); err != nil {
		failed = true
		if schemaErr, ok := err.(*solar.SchemaError); ok {
			fmt.Println(renderViolations("solar system", schemaErr.Violations))
		} else {
			fmt.Println(renderErr(err))
		}
	} else {
		fmt.Println(styleOK.Render("✓ solar system") + styleMuted.Render(fmt.Sprintf(" — %d body(ies)",
			len(m.Solar.Bodies))))
	}

	if failed {
		return fmt.Errorf("validation failed for %s", path)
	}
	return nil
}
