package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Davincible/fieldcalc/internal/validation"
	"github.com/Davincible/fieldcalc/pkg/config"
	"github.com/Davincible/fieldcalc/pkg/expr"
	"github.com/Davincible/fieldcalc/pkg/export"
	"github.com/Davincible/fieldcalc/pkg/fieldstore"
	"github.com/Davincible/fieldcalc/pkg/galois"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// fieldFlags are the three inputs that define a field.
type fieldFlags struct {
	prime   int
	degree  int
	modulus string
}

func bindFieldFlags(cmd *cobra.Command, ff *fieldFlags) {
	cmd.Flags().IntVarP(&ff.prime, "prime", "p", 0, "Prime characteristic p (default from config)")
	cmd.Flags().IntVarP(&ff.degree, "degree", "m", 0, "Extension degree m (default from config)")
	cmd.Flags().StringVarP(&ff.modulus, "modulus", "f", "", "Irreducible modulus polynomial, e.g. '1+x+x^2'")
}

// anyFieldFlagSet reports whether the user gave any field flag explicitly.
func anyFieldFlagSet(cmd *cobra.Command) bool {
	for _, name := range []string{"prime", "degree", "modulus"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

// loadConfig reads the configuration named by --config, or the default one.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cm, err := config.NewConfigManager(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cm.GetConfig(), nil
}

// resolve fills unset flags from the configuration defaults.
func (ff fieldFlags) resolve(cmd *cobra.Command, cfg *config.Config) fieldFlags {
	out := ff
	if !cmd.Flags().Changed("prime") {
		out.prime = cfg.Defaults.Prime
	}
	if !cmd.Flags().Changed("degree") {
		out.degree = cfg.Defaults.Degree
	}
	if !cmd.Flags().Changed("modulus") {
		out.modulus = cfg.Defaults.Modulus
	}
	return out
}

func validateFieldInput(p, m int, modulus string) error {
	if err := validation.ValidateFieldParams(p, m); err != nil {
		return err
	}
	if err := validation.ValidatePolynomial(modulus); err != nil {
		return fmt.Errorf("invalid modulus: %w", err)
	}
	return nil
}

// buildField creates the field described by the flags and configuration.
func buildField(cmd *cobra.Command, ff fieldFlags) (*galois.Field, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	r := ff.resolve(cmd, cfg)
	if err := validateFieldInput(r.prime, r.degree, r.modulus); err != nil {
		return nil, err
	}

	f, err := galois.NewField(r.prime, r.degree, r.modulus, cfg.FieldOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize field: %w", err)
	}
	return f, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorTitle names the kind of failure for display.
func errorTitle(err error) string {
	switch {
	case errors.Is(err, fieldstore.ErrNotInitialized):
		return "Field Not Initialized"
	case errors.Is(err, galois.ErrNotIrreducible):
		return "Irreducibility Error"
	case errors.Is(err, galois.ErrParse):
		return "Polynomial Error"
	case errors.Is(err, galois.ErrNoInverse), errors.Is(err, expr.ErrMalformedExpression):
		return "Evaluation Error"
	case errors.Is(err, galois.ErrNotPrime), errors.Is(err, galois.ErrInvalidDegree),
		errors.Is(err, galois.ErrDegreeMismatch), errors.Is(err, galois.ErrOrderTooLarge):
		return "Input Error"
	default:
		return "Error"
	}
}

// PrintError writes err with a title for its kind.
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(w, "✗ %s: ", errorTitle(err))
	fmt.Fprintln(w, err)
}

func printWarning(w io.Writer, f *galois.Field) {
	if warning := f.Warning(); warning != "" {
		yellow := color.New(color.FgYellow, color.Bold)
		yellow.Fprintln(w, "⚠️  Irreducibility Warning:")
		fmt.Fprintf(w, "  %s\n", warning)
		fmt.Fprintln(w, "  Continuing, but please verify your polynomial is irreducible.")
	}
}

func printSummary(w io.Writer, f *galois.Field) {
	green := color.New(color.FgGreen, color.Bold)
	s := f.Summary()

	green.Fprintf(w, "✓ Field: F(%d^%d)\n", s.P, s.M)
	fmt.Fprintf(w, "  Irreducible Polynomial: %s\n", s.Modulus)
	fmt.Fprintf(w, "  Field Order: %d elements\n", s.Order)
	fmt.Fprintf(w, "  Irreducibility: %s\n", s.Irreducibility)
	printWarning(w, f)
}

func printElements(w io.Writer, f *galois.Field) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintln(w, "Field Elements:")
	for _, e := range f.Elements() {
		fmt.Fprintf(w, "%s  ->  %s\n", e, e.Vector())
	}
}

// printGrid writes a square table with a header row and column of labels.
func printGrid(w io.Writer, corner string, labels []string, cell func(i, j int) string) {
	width := len(corner)
	for _, l := range labels {
		width = max(width, len(l))
	}
	for i := range labels {
		for j := range labels {
			width = max(width, len(cell(i, j)))
		}
	}

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-len(s))
	}

	row := []string{pad(corner)}
	for _, l := range labels {
		row = append(row, pad(l))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(row, " | "), " "))
	fmt.Fprintln(w, strings.Repeat("-", (width+3)*(len(labels)+1)-3))

	for i, l := range labels {
		row = row[:0]
		row = append(row, pad(l))
		for j := range labels {
			row = append(row, pad(cell(i, j)))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(row, " | "), " "))
	}
}

func printMulTable(w io.Writer, f *galois.Field) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(w, "Multiplication Table for F(%d^%d):\n", f.P(), f.M())

	elements := f.Elements()
	labels := make([]string, len(elements))
	for i, e := range elements {
		labels[i] = e.String()
	}
	mul := f.MulTable()
	printGrid(w, "*", labels, func(i, j int) string {
		return mul.At(i, j).String()
	})
}

func printInverses(w io.Writer, f *galois.Field) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintln(w, "Multiplicative Inverses:")
	for _, pair := range f.InvTable().Pairs() {
		fmt.Fprintf(w, "%s  ->  %s\n", pair.Element, pair.Inverse)
	}
}

type evalResult struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Vector     []int  `json:"vector"`
}

func evaluate(f *galois.Field, input string) (*evalResult, error) {
	input = validation.SanitizeInput(input)
	if err := validation.ValidateExpression(input); err != nil {
		return nil, fmt.Errorf("%w: %v", expr.ErrMalformedExpression, err)
	}
	res, err := expr.Evaluate(f, input)
	if err != nil {
		return nil, err
	}
	return &evalResult{Expression: input, Result: res.String(), Vector: append([]int(nil), res...)}, nil
}

func printResult(w io.Writer, r *evalResult) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprint(w, "Result: ")
	fmt.Fprintf(w, "%s  ->  %s\n", r.Result, galois.Element(r.Vector).Vector())
}

func elementViews(f *galois.Field) []export.ElementView {
	elements := f.Elements()
	views := make([]export.ElementView, len(elements))
	for i, e := range elements {
		views[i] = export.ElementView{String: e.String(), Vector: append([]int(nil), e...)}
	}
	return views
}

// resolveExportPath places relative output paths under the configured
// export directory.
func resolveExportPath(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
