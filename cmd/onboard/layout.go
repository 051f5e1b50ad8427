package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/onboarding/internal/cli"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/layout"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the geometry of each step",
	Long:  `Resolves the layout of every step (or one with --step) for the configured orientation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		orientation, err := domain.ParseOrientation(cfg.Orientation)
		if err != nil {
			return err
		}

		loader, err := cli.LoadTable(cfg)
		if err != nil {
			return err
		}
		steps, err := loader.LoadSteps()
		if err != nil {
			return err
		}

		index, _ := cmd.Flags().GetInt("step")
		if index >= len(steps) {
			return fmt.Errorf("step %d of %d: %w", index, len(steps), domain.ErrOutOfRange)
		}

		adapter := layout.Default()
		var geos []domain.Geometry
		for i, step := range steps {
			if index >= 0 && i != index {
				continue
			}
			geos = append(geos, adapter.Layout(step, orientation))
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(geos)
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(geos)
		default:
			return fmt.Errorf("unknown format %q (yaml or json)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().Int("step", -1, "Only this step (zero-based)")
	layoutCmd.Flags().String("format", "yaml", "Output format: yaml or json")
}
