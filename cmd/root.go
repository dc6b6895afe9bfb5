package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/almanac/internal/world"
)

var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Timekeeping for invented worlds",
	Long: "Almanac tracks time in a world with its own calendar: custom months,\n" +
		"weekdays, eras and leap rules, plus the skies above it.",
}

// log is the shared logger, configured in initConfig. It stays a no-op
// unless --verbose is set.
var log = zap.NewNop()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderErr(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .almanac.yaml)")
	rootCmd.PersistentFlags().StringP("world", "w", "world.toml", "path to the world manifest")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	viper.BindPFlag("world", rootCmd.PersistentFlags().Lookup("world"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".almanac")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ALMANAC")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	if verbose, _ := rootCmd.Flags().GetBool("verbose"); verbose {
		cfg := zap.NewDevelopmentConfig()
		if logger, err := cfg.Build(); err == nil {
			log = logger
		}
	}
}

// worldPath resolves the manifest path. Going through viper honors the
// --world flag, the ALMANAC_WORLD env var and the config file alike;
// everything that derives a sibling path (the chronicle) must use this
// same resolution or it can split off from the world it belongs to.
func worldPath() string {
	return viper.GetString("world")
}

// loadWorld opens the manifest named by --world (or ALMANAC_WORLD).
func loadWorld() (*world.World, error) {
	path := worldPath()
	log.Debug("loading world", zap.String("path", path))
	return world.Load(path)
}
