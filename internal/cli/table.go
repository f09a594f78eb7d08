package cli

import (
	"fmt"

	"github.com/Davincible/fieldcalc/pkg/export"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewTableCommand creates the command that shows or exports the
// multiplication table
func NewTableCommand() *cobra.Command {
	var (
		ff         fieldFlags
		inverses   bool
		outputFile string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the multiplication table of the field",
		Long: `Print the full multiplication table with rows and columns keyed by
the canonical element strings. With --output the table, the element list and
the inverse table are written to a file instead (json, yaml, csv or an html
heat map).`,
		Example: `  # Print the table of GF(4) with inverses
  fieldcalc table -p 2 -m 2 -f "1+x+x^2" --inverses

  # Write an HTML heat map
  fieldcalc table -p 3 -m 2 -f "1+x^2" -o gf9.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildField(cmd, ff)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if outputFile != "" {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				fmtName := format
				if fmtName == "" {
					if inferred, err := export.FormatFromPath(outputFile); err == nil {
						fmtName = string(inferred)
					} else {
						fmtName = cfg.Export.DefaultFormat
					}
				}
				exportFormat, err := export.ParseFormat(fmtName)
				if err != nil {
					return err
				}

				path := resolveExportPath(cfg.Export.Directory, outputFile)
				if err := export.WriteFile(path, f, exportFormat); err != nil {
					return fmt.Errorf("failed to export table: %w", err)
				}

				green := color.New(color.FgGreen, color.Bold)
				green.Fprintf(out, "✓ Table saved to %s\n", path)
				return nil
			}

			if jsonOutput(cmd) {
				return writeJSON(out, export.NewTable(f))
			}

			printWarning(out, f)
			printMulTable(out, f)
			if inverses {
				fmt.Fprintln(out)
				printInverses(out, f)
			}
			return nil
		},
	}

	bindFieldFlags(cmd, &ff)
	cmd.Flags().BoolVarP(&inverses, "inverses", "i", false, "Also show the multiplicative inverse table")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the tables to a file")
	cmd.Flags().StringVar(&format, "format", "", "Export format: json, yaml, csv, html (default from extension)")

	return cmd
}
