package cli

import (
	"fmt"

	"github.com/Davincible/fieldcalc/internal/validation"
	"github.com/Davincible/fieldcalc/pkg/galois"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type irreducibleResult struct {
	Polynomial string `json:"polynomial"`
	Prime      int    `json:"prime"`
	Result     string `json:"result"`
}

// NewIrreducibleCommand creates the command that checks a polynomial for
// irreducibility or lists irreducible polynomials
func NewIrreducibleCommand() *cobra.Command {
	var (
		prime  int
		degree int
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "irreducible [POLYNOMIAL]",
		Short: "Check whether a polynomial is irreducible over F_p",
		Long: `Check a polynomial for irreducibility over F_p. Degrees 1 to 3 are
decided exactly; higher degrees are reported as inconclusive.

With --list, print every monic irreducible polynomial of degree m instead.`,
		Example: `  fieldcalc irreducible -p 2 "1+x+x^2"
  fieldcalc irreducible -p 3 -m 2 --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("prime") {
				prime = cfg.Defaults.Prime
			}
			if !cmd.Flags().Changed("degree") {
				degree = cfg.Defaults.Degree
			}
			if err := validation.ValidatePrime(prime); err != nil {
				return err
			}
			if !galois.IsPrime(prime) {
				return fmt.Errorf("%d is %w", prime, galois.ErrNotPrime)
			}

			out := cmd.OutOrStdout()
			if list {
				return listIrreducible(cmd, prime, degree, cfg.FieldOptions()...)
			}

			if len(args) == 0 {
				return fmt.Errorf("a polynomial argument is required unless --list is given")
			}
			if err := validation.ValidatePolynomial(args[0]); err != nil {
				return err
			}
			poly, err := galois.Parse(args[0], prime, 0)
			if err != nil {
				return err
			}

			result := galois.CheckIrreducible(poly, prime)
			if jsonOutput(cmd) {
				return writeJSON(out, irreducibleResult{
					Polynomial: galois.Format(poly),
					Prime:      prime,
					Result:     result.String(),
				})
			}

			switch result {
			case galois.Irreducible:
				color.New(color.FgGreen, color.Bold).Fprintf(out, "✓ The polynomial %s is irreducible over F%d.\n", galois.Format(poly), prime)
			case galois.Reducible:
				color.New(color.FgRed, color.Bold).Fprintf(out, "✗ The polynomial %s is NOT irreducible over F%d.\n", galois.Format(poly), prime)
			case galois.Inconclusive:
				color.New(color.FgYellow, color.Bold).Fprintf(out, "⚠️  Cannot conclusively verify irreducibility for degrees > %d.\n", galois.MaxCheckedDegree)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&prime, "prime", "p", 0, "Prime characteristic p (default from config)")
	cmd.Flags().IntVarP(&degree, "degree", "m", 0, "Degree for --list (default from config)")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List all monic irreducible polynomials of degree m")

	return cmd
}

func listIrreducible(cmd *cobra.Command, p, m int, opts ...galois.Option) error {
	if err := validation.ValidateDegree(m); err != nil {
		return err
	}
	if m > galois.MaxCheckedDegree {
		return fmt.Errorf("cannot list irreducible polynomials for degree %d > %d", m, galois.MaxCheckedDegree)
	}

	polys, err := galois.FindIrreducible(p, m, opts...)
	if err != nil {
		return err
	}
	formatted := make([]string, len(polys))
	for i, poly := range polys {
		formatted[i] = galois.Format(poly)
	}

	out := cmd.OutOrStdout()
	if jsonOutput(cmd) {
		return writeJSON(out, formatted)
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(out, "Monic irreducible polynomials of degree %d over F%d (%d):\n", m, p, len(formatted))
	for _, s := range formatted {
		fmt.Fprintf(out, "  %s\n", s)
	}
	return nil
}
