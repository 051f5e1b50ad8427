package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/onboarding/internal/cli"
	"github.com/aretw0/onboarding/pkg/transition"
	"github.com/spf13/cobra"
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions",
	Short: "List the transition between each pair of steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
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
		table, found, err := loader.LoadTransitions()
		if err != nil {
			return err
		}
		if !found {
			table = transition.Canonical()
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FROM\tTO\tSTYLE\tDURATION\tCURVE")
		for i := 0; i+1 < len(steps); i++ {
			spec := table.Select(i, i+1)
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", i, i+1, spec.Style, spec.Duration, spec.Curve)
		}
		fmt.Fprintf(w, "%d\t-\tdismiss\t-\t-\n", len(steps)-1)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(transitionsCmd)
}
