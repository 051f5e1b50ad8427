package main

import (
	"fmt"

	"github.com/aretw0/onboarding/internal/cli"
	"github.com/aretw0/onboarding/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the step table and transitions",
	Long:  `Loads the configured step table and transitions and reports every problem found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		loader, err := cli.LoadTable(cfg)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		steps, err := loader.LoadSteps()
		if err != nil {
			return err
		}
		if err := validator.ValidateTable(steps); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if table, found, err := loader.LoadTransitions(); err != nil {
			return err
		} else if found {
			if err := table.Validate(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Table is valid: %d steps ✅\n", len(steps))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
