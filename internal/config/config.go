package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/onboarding/pkg/domain"
	"gopkg.in/yaml.v3"
)

const (
	// OrientationAuto derives the orientation from the terminal size.
	OrientationAuto    = "auto"
	DefaultOrientation = "portrait"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultFPS         = 60
	DefaultMode        = "tui"
)

// Config holds the full configuration schema of the onboard CLI.
type Config struct {
	// Steps is a YAML/JSON step table file. Empty means the built-in table.
	Steps string `mapstructure:"steps" yaml:"steps" json:"steps"`
	// Transitions is a file with a transitions section overriding the table's.
	Transitions string        `mapstructure:"transitions" yaml:"transitions" json:"transitions"`
	Orientation string        `mapstructure:"orientation" yaml:"orientation" json:"orientation"`
	Log         LogConfig     `mapstructure:"log" yaml:"log" json:"log"`
	Metrics     MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
	UI          UIConfig      `mapstructure:"ui" yaml:"ui" json:"ui"`
}

// LogConfig controls log output settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// MetricsConfig controls the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" json:"addr"`
}

// UIConfig holds host settings.
type UIConfig struct {
	// Mode is "tui" (Bubble Tea) or "text" (line commands).
	Mode     string `mapstructure:"mode" yaml:"mode" json:"mode"`
	FPS      int    `mapstructure:"fps" yaml:"fps" json:"fps"`
	Markdown bool   `mapstructure:"markdown" yaml:"markdown" json:"markdown"`
}

// DefaultConfig returns a config with all default values applied.
func DefaultConfig() Config {
	return Config{
		Orientation: DefaultOrientation,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		UI: UIConfig{
			Mode:     DefaultMode,
			FPS:      DefaultFPS,
			Markdown: true,
		},
	}
}

var (
	allowedLogLevels  = []string{"debug", "info", "warn", "error"}
	allowedLogFormats = []string{"text", "json"}
	allowedModes      = []string{"tui", "text"}
)

// Validate reports every invalid value.
func (c Config) Validate() error {
	var errs []error

	if !strings.EqualFold(c.Orientation, OrientationAuto) {
		if _, err := domain.ParseOrientation(c.Orientation); err != nil {
			errs = append(errs, err)
		}
	}
	if !slices.Contains(allowedLogLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v, got: %q", allowedLogLevels, c.Log.Level))
	}
	if !slices.Contains(allowedLogFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v, got: %q", allowedLogFormats, c.Log.Format))
	}
	if !slices.Contains(allowedModes, c.UI.Mode) {
		errs = append(errs, fmt.Errorf("ui.mode must be one of %v, got: %q", allowedModes, c.UI.Mode))
	}
	if c.UI.FPS < 1 || c.UI.FPS > 240 {
		errs = append(errs, fmt.Errorf("ui.fps must be between 1 and 240, got: %d", c.UI.FPS))
	}
	return errors.Join(errs...)
}

// String renders the configuration as YAML.
func (c Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return strings.TrimSpace(string(data))
}
