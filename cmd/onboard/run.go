package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/onboarding/internal/cli"
	"github.com/aretw0/onboarding/internal/config"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the onboarding wizard",
	Long: `Runs the wizard in a Bubble Tea interface (--mode tui) or with line
commands (--mode text). Text mode is used automatically when stdout is not a
terminal or a --script is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		script, _ := cmd.Flags().GetString("script")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Execute(ctx, cli.RunOptions{
			Config: cfg,
			Quiet:  quiet,
			Script: script,
			In:     cmd.InOrStdin(),
			Out:    os.Stdout,
			ErrOut: cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.String("mode", config.DefaultMode, "Interface: tui or text")
	flags.Int("fps", config.DefaultFPS, "Animation frame rate of the tui mode")
	flags.Bool("markdown", true, "Render text mode screens through glamour")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	flags.String("script", "", "Replay line commands from this file in text mode")
	flags.BoolP("quiet", "q", false, "Do not print the banner")
}
