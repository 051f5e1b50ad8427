package main

import (
	"fmt"
	"os"

	"github.com/aretw0/onboarding/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Onboard runs a paged onboarding wizard in the terminal",
	Long: `Onboard walks the user through a fixed sequence of screens: welcome,
feature highlight, a skill-level choice and completion. Step tables and
transitions can be loaded from YAML or JSON files.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ./onboard.yaml or ~/.config/onboard/config.yaml)")
	flags.String("steps", "", "Step table file (YAML or JSON); empty uses the built-in table")
	flags.String("transitions", "", "File whose transitions section replaces the table's")
	flags.String("orientation", config.DefaultOrientation, "Initial orientation (portrait, landscape or auto)")
	flags.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "Log format (text or json)")
}

// loadConfig merges defaults, config file, ONBOARD_* env and the command's flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	res, err := config.Load(config.LoadOptions{
		ConfigFile: file,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return config.Config{}, err
	}
	return res.Config, nil
}
