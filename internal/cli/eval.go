package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewEvalCommand creates the command that evaluates an expression in the field
func NewEvalCommand() *cobra.Command {
	var ff fieldFlags

	cmd := &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate an arithmetic expression over field elements",
		Long: `Evaluate an infix expression combining field elements with + - * /
and parentheses. Elements are written as polynomials in x, e.g. "1+x" or
"2x^2". Products and quotients are reduced modulo the field's modulus.`,
		Example: `  fieldcalc eval -p 2 -m 2 -f "1+x+x^2" "x*x/x"
  fieldcalc eval -p 3 -m 1 -f "1+x" "1+2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildField(cmd, ff)
			if err != nil {
				return err
			}

			res, err := evaluate(f, strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				return writeJSON(out, res)
			}
			printWarning(out, f)
			printResult(out, res)
			return nil
		},
	}

	bindFieldFlags(cmd, &ff)
	return cmd
}
