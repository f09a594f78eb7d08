package cli

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the fieldcalc command tree
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fieldcalc",
		Short: "Finite field calculator for GF(p^m)",
		Long: `Fieldcalc builds the finite field GF(p^m) as F_p[x]/(f(x)) and computes
in it.

Features:
- Element enumeration and full multiplication and inverse tables
- Expression evaluation with + - * / and parentheses
- Irreducibility checks for moduli of degree up to 3
- Table export to JSON, YAML, CSV or an HTML heat map
- Interactive session with a replaceable current field

Polynomials are written lowest degree first, e.g. "1 + x + x^2".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			if level, ok := logLevel(verbose, cfg.UI.Verbosity); ok {
				slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: level,
				})))
			}

			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !cfg.UI.UseColor {
				color.NoColor = true
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		NewInitCommand(),
		NewElementsCommand(),
		NewTableCommand(),
		NewEvalCommand(),
		NewIrreducibleCommand(),
		NewReplCommand(),
		NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/fieldcalc/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	return rootCmd
}

// logLevel maps --verbose and the configured verbosity to a log level. The
// second result is false when the default level from main should stay.
func logLevel(verbose bool, verbosity string) (slog.Level, bool) {
	switch {
	case verbose || verbosity == "verbose":
		return slog.LevelDebug, true
	case verbosity == "quiet":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
