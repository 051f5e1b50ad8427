package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/onboarding"
	"github.com/aretw0/onboarding/internal/config"
	"github.com/aretw0/onboarding/internal/presentation/tui"
	tuihost "github.com/aretw0/onboarding/pkg/adapters/tui"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/observability"
	"github.com/aretw0/onboarding/pkg/ports"
	"github.com/aretw0/onboarding/pkg/runner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config config.Config
	Quiet  bool
	// Script is a file of line commands replayed in text mode instead of reading In.
	Script string

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Execute runs the onboarding flow in the configured UI mode until it is
// dismissed, the user quits or ctx is done.
func Execute(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	logger, err := NewLogger(cfg.Log, opts.ErrOut)
	if err != nil {
		return err
	}

	loader, err := LoadTable(cfg)
	if err != nil {
		return err
	}

	mode := cfg.UI.Mode
	if opts.Script != "" {
		f, err := os.Open(opts.Script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		opts.In = f
		mode = "text"
	}

	hooks := observability.LoggingHooks(logger)
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}
		if _, err := StartMetricsServer(ctx, cfg.Metrics.Addr, reg, logger); err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		hooks = observability.CombineHooks(hooks, metrics.Hooks())
	}

	orientation := resolveOrientation(cfg.Orientation, opts.Out)
	wizardOpts := []onboarding.Option{
		onboarding.WithLogger(logger),
		onboarding.WithLifecycleHooks(hooks),
		onboarding.WithOrientation(orientation),
	}

	if mode == "tui" && !isTerminal(opts.Out) {
		logger.Warn("output is not a terminal, falling back to text mode")
		mode = "text"
	}

	if mode == "tui" {
		err = runTUI(ctx, opts, cfg, loader, wizardOpts)
	} else {
		err = runText(ctx, opts, cfg, loader, wizardOpts, logger)
	}
	return handleExecutionError(err)
}

func runText(ctx context.Context, opts RunOptions, cfg config.Config, loader ports.TableLoader, wizardOpts []onboarding.Option, logger *slog.Logger) error {
	renderer := tui.Renderer(tui.PlainRenderer)
	if cfg.UI.Markdown {
		r, err := tui.NewRenderer(0)
		if err != nil {
			logger.Warn("markdown renderer unavailable", "err", err)
		} else {
			renderer = r
		}
	}

	if !opts.Quiet {
		tui.PrintBanner(opts.Out)
	}

	host := runner.NewTextHost(opts.Out, runner.WithRenderer(renderer))
	wizard, err := onboarding.NewFromLoader(loader, host, wizardOpts...)
	if err != nil {
		return err
	}

	handler := runner.NewTextHandler(opts.In, opts.Out)
	defer handler.Close()

	return runner.New(handler, host, runner.WithLogger(logger)).Run(ctx, wizard)
}

func runTUI(ctx context.Context, opts RunOptions, cfg config.Config, loader ports.TableLoader, wizardOpts []onboarding.Option) error {
	model := tuihost.New(tuihost.WithFPS(cfg.UI.FPS))
	wizard, err := onboarding.NewFromLoader(loader, model, wizardOpts...)
	if err != nil {
		return err
	}
	model.Attach(ctx, wizard)

	return tuihost.Run(ctx, model,
		tea.WithAltScreen(),
		tea.WithInput(opts.In),
		tea.WithOutput(opts.Out),
	)
}

// resolveOrientation parses name. "auto" measures the terminal behind w,
// counting a cell as twice as tall as it is wide, and falls back to portrait.
func resolveOrientation(name string, w io.Writer) domain.Orientation {
	if !strings.EqualFold(name, config.OrientationAuto) {
		o, _ := domain.ParseOrientation(name)
		return o
	}
	f, ok := w.(*os.File)
	if !ok {
		return domain.Portrait
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return domain.Portrait
	}
	return domain.OrientationFor(float64(width), float64(height*2))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// handleExecutionError maps user interruptions to a clean exit.
func handleExecutionError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
