// Package engine provides the orchestration layer between input surfaces
// and the fraction/grid core.
//
// The engine runs one expression through the parser and the composer,
// classifies the outcome into a Status, and fingerprints the resulting
// layouts. It keeps no state between calls: every request is answered from
// its own input, so a newer result always fully replaces an older one.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI and the live-edit prompt
//   - Visualize: parse, compose and classify a single expression
//   - Status: the distinct outcomes a renderer must message separately
package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/danieljhkim/fracgrid/internal/config"
	"github.com/danieljhkim/fracgrid/internal/fraction"
	"github.com/danieljhkim/fracgrid/internal/grid"
	"github.com/danieljhkim/fracgrid/internal/hash"
)

// Engine orchestrates all fracgrid operations.
// It is the main API surface called by the CLI.
type Engine struct {
	composer *grid.Composer
	policy   fraction.ParsePolicy
	hasher   hash.Hasher
	logger   *slog.Logger
}

// New creates a new Engine from a validated configuration.
// A nil logger discards log output.
func New(cfg *config.Config, hasher hash.Hasher, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		composer: grid.NewComposer(cfg.Grid),
		policy:   cfg.Parse,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Options returns the composer options in effect.
func (e *Engine) Options() grid.Options {
	return e.composer.Options()
}

// ParsePolicy returns the parse policy in effect.
func (e *Engine) ParsePolicy() fraction.ParsePolicy {
	return e.policy
}
