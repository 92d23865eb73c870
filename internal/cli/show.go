package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <expression>",
	Short: "Draw the grids for a fraction sum",
	Long: `Draw the first fraction, the second fraction and their sum on a shared grid.

The expression may be quoted or passed as separate words:

  fracgrid show "1/4 + 2/3"
  fracgrid show 1/4 + 2/3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine(cmd)
		if err != nil {
			return err
		}

		expr := strings.Join(args, " ")
		result, err := visualize(cmd, eng, expr)
		var statusErr *StatusError
		if err != nil && !errors.As(err, &statusErr) {
			return err
		}

		if structuredOutput() {
			if outErr := outputStructured(cmd.OutOrStdout(), result); outErr != nil {
				return outErr
			}
			return err
		}

		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), newRenderer(cmd, cfg).Render(result))
		return nil
	},
}
