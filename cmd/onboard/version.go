package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/onboarding"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of onboard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "onboard version %s\n", strings.TrimSpace(onboarding.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
