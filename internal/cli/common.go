package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/fracgrid/internal/config"
	"github.com/danieljhkim/fracgrid/internal/engine"
	"github.com/danieljhkim/fracgrid/internal/fraction"
	"github.com/danieljhkim/fracgrid/internal/fsops"
	"github.com/danieljhkim/fracgrid/internal/grid"
	"github.com/danieljhkim/fracgrid/internal/hash"
	"github.com/danieljhkim/fracgrid/internal/render"
)

// StatusError reports an expression that produced a non-OK status.
// Its message is the user-facing text for the status.
type StatusError struct {
	Status engine.Status
	Err    error
}

func (e *StatusError) Error() string {
	return render.Message(e.Status)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// loadConfig reads the configuration file and environment, then applies any
// flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	cfg, err := config.Load(fsops.NewRealFS(), paths, flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("resolution") {
		cfg.Grid.Resolution = grid.ResolutionMode(flags.resolution)
	}
	if f.Changed("size") {
		cfg.Grid.Size = flags.size
	}
	if f.Changed("improper") {
		cfg.Grid.AllowImproper = flags.improper
	}
	if f.Changed("overflow") {
		cfg.Grid.Overflow = grid.OverflowPolicy(flags.overflow)
	}
	if f.Changed("lenient") {
		cfg.Parse = fraction.ParseStrict
		if flags.lenient {
			cfg.Parse = fraction.ParseLenient
		}
	}
}

// newLogger creates the stderr logger. Debug output needs --verbose.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(cmd *cobra.Command) (*engine.Engine, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engine.New(cfg, hash.NewSHA256Hasher(), newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}

// newRenderer creates a terminal renderer for cmd's output.
func newRenderer(cmd *cobra.Command, cfg *config.Config) *render.Renderer {
	return render.New(cmd.OutOrStdout(), cfg.Theme, render.WithPlain(flags.plain))
}

// visualize runs one expression and converts a non-OK status into a
// StatusError. The result is returned alongside it for structured output.
func visualize(cmd *cobra.Command, eng *engine.Engine, expr string) (*engine.VisualizeResult, error) {
	result, err := eng.Visualize(cmd.Context(), &engine.VisualizeRequest{Expression: expr})
	if result == nil {
		return nil, err
	}
	if !result.OK() {
		return result, &StatusError{Status: result.Status, Err: err}
	}
	return result, nil
}

// structuredOutput reports whether --json or --yaml was requested.
func structuredOutput() bool {
	return jsonOutput || yamlOutput
}

// outputStructured writes v as JSON or YAML, per the global flags.
func outputStructured(w io.Writer, v any) error {
	if yamlOutput {
		return outputYAML(w, v)
	}
	return outputJSON(w, v)
}

// outputJSON outputs a value as JSON to w.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputYAML outputs a value as YAML to w.
func outputYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
