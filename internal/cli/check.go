package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/fracgrid/internal/engine"
	"github.com/danieljhkim/fracgrid/internal/render"
)

// checkSummary is the structured output of check. It omits the layouts.
type checkSummary struct {
	Expression  string        `json:"expression" yaml:"expression"`
	Status      engine.Status `json:"status" yaml:"status"`
	Message     string        `json:"message,omitempty" yaml:"message,omitempty"`
	Sum         string        `json:"sum,omitempty" yaml:"sum,omitempty"`
	Resolution  int           `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	Rows        int           `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols        int           `json:"cols,omitempty" yaml:"cols,omitempty"`
	FirstCells  int           `json:"first_cells,omitempty" yaml:"first_cells,omitempty"`
	SecondCells int           `json:"second_cells,omitempty" yaml:"second_cells,omitempty"`
	ExcessCells int           `json:"excess_cells,omitempty" yaml:"excess_cells,omitempty"`
}

func summarize(result *engine.VisualizeResult) checkSummary {
	s := checkSummary{
		Expression: result.Expression,
		Status:     result.Status,
		Message:    render.Message(result.Status),
	}
	if comp := result.Composition; comp != nil {
		s.Sum = comp.Sum.String()
		s.Resolution = comp.Resolution
		s.Rows = comp.Composed.Rows
		s.Cols = comp.Composed.Cols
		s.FirstCells = comp.FirstCells
		s.SecondCells = comp.SecondCells
		s.ExcessCells = comp.ExcessCells
	}
	return s
}

var checkCmd = &cobra.Command{
	Use:   "check <expression>",
	Short: "Validate an expression without drawing it",
	Long: `Parse and compose an expression and report its status and grid size.

Exits non-zero when the expression cannot be drawn.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine(cmd)
		if err != nil {
			return err
		}

		expr := strings.Join(args, " ")
		result, err := visualize(cmd, eng, expr)
		var statusErr *StatusError
		if err != nil && !errors.As(err, &statusErr) {
			return err
		}

		summary := summarize(result)
		if structuredOutput() {
			if outErr := outputStructured(cmd.OutOrStdout(), summary); outErr != nil {
				return outErr
			}
			return err
		}

		out := cmd.OutOrStdout()
		if err != nil {
			PrintError(out, fmt.Sprintf("%s: %s", summary.Status, summary.Message))
			return err
		}

		comp := result.Composition
		PrintSuccess(out, fmt.Sprintf("%s = %s", comp.Pair, summary.Sum))
		PrintLabelValue(out, "Status", string(summary.Status))
		opts := eng.Options()
		PrintLabelValue(out, "Mode", fmt.Sprintf("%s resolution, %s parsing", opts.Resolution, eng.ParsePolicy()))
		PrintLabelValue(out, "Resolution", PrintCount(summary.Resolution, "cell", "cells"))
		PrintLabelValue(out, "Grid", fmt.Sprintf("%d x %d", summary.Rows, summary.Cols))
		PrintLabelValue(out, "First", PrintCount(summary.FirstCells, "cell", "cells"))
		PrintLabelValue(out, "Second", PrintCount(summary.SecondCells, "cell", "cells"))
		if comp.HasOverflow() {
			PrintWarning(out, fmt.Sprintf("sum exceeds one whole by %s on %s",
				PrintCount(summary.ExcessCells, "cell", "cells"),
				PrintCount(len(comp.Overflow), "overflow grid", "overflow grids")))
		}
		return nil
	},
}
