package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/fracgrid/internal/tui"
)

// ErrNotTerminal indicates interactive mode was started without a terminal.
var ErrNotTerminal = errors.New("interactive mode requires a terminal")

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var interactiveCmd = &cobra.Command{
	Use:     "interactive [expression]",
	Aliases: []string{"i"},
	Short:   "Edit an expression and watch the grids update",
	Long: `Open a prompt that redraws the grids on every keystroke.

Press esc or ctrl+c to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return ErrNotTerminal
		}

		eng, cfg, err := newEngine(cmd)
		if err != nil {
			return err
		}

		initial := strings.Join(args, " ")
		return tui.Run(cmd.Context(), eng, newRenderer(cmd, cfg), initial, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
