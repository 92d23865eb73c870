package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/danieljhkim/fracgrid/internal/fraction"
	"github.com/danieljhkim/fracgrid/internal/grid"
)

// Visualize parses and composes one expression.
//
// The result is always non-nil for a non-nil request. For any status other
// than StatusOK the returned error is the classified parser or composer
// error, so callers can both render the status and exit non-zero.
func (e *Engine) Visualize(ctx context.Context, req *VisualizeRequest) (*VisualizeResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}

	result := &VisualizeResult{Expression: req.Expression}

	pair, err := fraction.Parse(req.Expression, e.policy)
	if err != nil {
		return e.fail(ctx, result, err)
	}
	result.Pair = &pair

	comp, err := e.composer.ComposePair(pair)
	if err != nil {
		return e.fail(ctx, result, err)
	}

	result.Status = StatusOK
	result.Composition = comp
	result.Fingerprint = e.fingerprint(result)

	e.logger.DebugContext(ctx, "composed expression",
		"expression", pair.String(),
		"resolution", comp.Resolution,
		"rows", comp.Composed.Rows,
		"cols", comp.Composed.Cols,
		"first_cells", comp.FirstCells,
		"second_cells", comp.SecondCells,
		"excess_cells", comp.ExcessCells,
	)
	return result, nil
}

// fail classifies err into result. Errors that are not user-facing outcomes
// are returned without a result.
func (e *Engine) fail(ctx context.Context, result *VisualizeResult, err error) (*VisualizeResult, error) {
	status, ok := Classify(err)
	if !ok {
		e.logger.ErrorContext(ctx, "visualize failed", "expression", result.Expression, "error", err)
		return nil, err
	}

	result.Status = status
	result.Error = err.Error()
	result.Fingerprint = e.fingerprint(result)

	e.logger.DebugContext(ctx, "expression rejected",
		"expression", result.Expression,
		"status", string(status),
		"error", err,
	)
	return result, err
}

// fingerprint hashes everything a renderer draws: the status, and for
// successful results the parsed pair and every layout.
func (e *Engine) fingerprint(result *VisualizeResult) string {
	var b strings.Builder
	b.WriteString(string(result.Status))
	b.WriteByte('\n')
	if comp := result.Composition; comp != nil {
		b.WriteString(comp.Pair.String())
		b.WriteByte('\n')
		writeLayout(&b, "first", comp.First)
		writeLayout(&b, "second", comp.Second)
		writeLayout(&b, "composed", comp.Composed)
		for i, l := range comp.Overflow {
			writeLayout(&b, fmt.Sprintf("overflow-%d", i), l)
		}
	}
	return e.hasher.Sum([]byte(b.String()))
}

func writeLayout(b *strings.Builder, name string, l grid.Layout) {
	fmt.Fprintf(b, "%s %dx%d\n", name, l.Rows, l.Cols)
	b.WriteString(l.String())
}
