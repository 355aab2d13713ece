// Package config loads the workspace configuration: embedded defaults,
// optionally overlaid by a user YAML file and then by command-line flags.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the application.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Sim       SimConfig       `yaml:"sim"`
	Window    WindowConfig    `yaml:"window"`
	Render    RenderConfig    `yaml:"render"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Headless is only set from the command line.
	Headless bool `yaml:"-"`
}

// GridConfig sizes the board. Seed 0 means time-based.
type GridConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// SimConfig controls advancement.
type SimConfig struct {
	TicksPerCycle int `yaml:"ticks_per_cycle"`
	TPS           int `yaml:"tps"`       // cycles per second, 0 = unpaced (headless only)
	MaxTicks      int `yaml:"max_ticks"` // 0 = unlimited
}

// WindowConfig holds GUI settings.
type WindowConfig struct {
	Scale     int `yaml:"scale"`
	BrushSize int `yaml:"brush_size"`
	BrushMax  int `yaml:"brush_max"`
}

// RGB is an opaque color.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RenderConfig holds cell colors.
type RenderConfig struct {
	Alive RGB `yaml:"alive"`
	Dead  RGB `yaml:"dead"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// TelemetryConfig controls stats logging and CSV output.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
	LogEvery  int    `yaml:"log_every"`
	Console   bool   `yaml:"console"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Only keys present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Bind attaches flag overrides for the most common settings to fs. Call it
// after Load so the loaded values become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Width, "width", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "height", c.Grid.Height, "grid height in cells")
	fs.Int64Var(&c.Grid.Seed, "seed", c.Grid.Seed, "seed for the initial board (0 = time-based)")
	fs.IntVar(&c.Sim.TicksPerCycle, "ticks-per-cycle", c.Sim.TicksPerCycle, "generations per cycle")
	fs.IntVar(&c.Sim.TPS, "tps", c.Sim.TPS, "cycles per second")
	fs.IntVar(&c.Sim.MaxTicks, "max-ticks", c.Sim.MaxTicks, "stop after N ticks (0 = unlimited)")
	fs.IntVar(&c.Window.Scale, "scale", c.Window.Scale, "pixel scale multiplier")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "log format (text, json)")
	fs.StringVar(&c.Telemetry.OutputDir, "output-dir", c.Telemetry.OutputDir, "directory for stats.csv (empty = disabled)")
	fs.IntVar(&c.Telemetry.LogEvery, "log-every", c.Telemetry.LogEvery, "log stats every N ticks (0 = never)")
	fs.BoolVar(&c.Telemetry.Console, "console", c.Telemetry.Console, "draw the board on stdout in headless mode")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width < 1 || c.Grid.Height < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Sim.TicksPerCycle < 0:
		return fmt.Errorf("%w: ticks_per_cycle %d", ErrInvalid, c.Sim.TicksPerCycle)
	case c.Sim.TPS < 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Sim.TPS)
	case c.Sim.MaxTicks < 0:
		return fmt.Errorf("%w: max_ticks %d", ErrInvalid, c.Sim.MaxTicks)
	case c.Window.Scale < 1:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Window.Scale)
	case c.Window.BrushMax < 1 || c.Window.BrushSize < 1 || c.Window.BrushSize > c.Window.BrushMax:
		return fmt.Errorf("%w: brush %d (max %d)", ErrInvalid, c.Window.BrushSize, c.Window.BrushMax)
	case c.Telemetry.LogEvery < 0:
		return fmt.Errorf("%w: log_every %d", ErrInvalid, c.Telemetry.LogEvery)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
