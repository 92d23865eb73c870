package engine

import (
	"github.com/danieljhkim/fracgrid/internal/fraction"
	"github.com/danieljhkim/fracgrid/internal/grid"
)

// VisualizeResult represents the outcome of visualizing one expression.
// Exactly one of Composition (StatusOK) or Error (any other status) is set.
type VisualizeResult struct {
	// Expression is the raw input
	Expression string `json:"expression" yaml:"expression"`

	// Status classifies the outcome
	Status Status `json:"status" yaml:"status"`

	// Pair is the parsed expression (nil on parse failure)
	Pair *fraction.Pair `json:"pair,omitempty" yaml:"pair,omitempty"`

	// Composition holds the layouts (nil unless Status is StatusOK)
	Composition *grid.Composition `json:"composition,omitempty" yaml:"composition,omitempty"`

	// Error is the underlying error text for non-OK statuses
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Fingerprint identifies the rendered content; equal fingerprints render identically
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// OK reports whether the expression was composed.
func (r *VisualizeResult) OK() bool {
	return r.Status == StatusOK
}
