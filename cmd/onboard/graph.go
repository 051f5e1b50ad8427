package main

import (
	"fmt"

	"github.com/aretw0/onboarding/internal/cli"
	"github.com/aretw0/onboarding/internal/presentation/graph"
	"github.com/aretw0/onboarding/pkg/transition"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the flow as a Mermaid diagram",
	Long:  `Outputs a Mermaid flowchart (graph LR) of the steps, labelled with the transition of each edge.`,
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

		var overlay *graph.Overlay
		if cmd.Flags().Changed("current") {
			current, _ := cmd.Flags().GetInt("current")
			overlay = &graph.Overlay{Current: current}
			for i := range current {
				overlay.Visited = append(overlay.Visited, i)
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(steps, table, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Int("current", 0, "Highlight this step as current and the earlier ones as visited")
}
