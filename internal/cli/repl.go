package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Davincible/fieldcalc/pkg/fieldstore"
	"github.com/Davincible/fieldcalc/pkg/galois"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewReplCommand creates the interactive calculator session
func NewReplCommand() *cobra.Command {
	var ff fieldFlags

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive field calculator",
		Long: `Start an interactive session. Initialize a field with
":init p m modulus", then type expressions to evaluate them.

Commands:
  :init p m modulus   initialize (or replace) the current field
  :field              show the current field summary
  :elements           list the field elements
  :table              show the multiplication table
  :inverses           show the inverse table
  :check poly         check a polynomial for irreducibility over F_p
  :reduce poly        reduce a polynomial modulo the field's modulus
  :reset              forget the current field
  :help               show this help
  :quit               leave the session

A failed :init leaves the previous field in place.`,
		Example: `  fieldcalc repl
  fieldcalc repl -p 2 -m 3 -f "1+x+x^3"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s := &session{
				store: fieldstore.New(cfg.FieldOptions()...),
				out:   cmd.OutOrStdout(),
			}

			if anyFieldFlagSet(cmd) {
				r := ff.resolve(cmd, cfg)
				s.initialize(r.prime, r.degree, r.modulus)
			}

			in := cmd.InOrStdin()
			interactive := false
			if file, ok := in.(*os.File); ok {
				interactive = term.IsTerminal(int(file.Fd()))
			}
			return s.run(in, interactive)
		},
	}

	bindFieldFlags(cmd, &ff)
	return cmd
}

type session struct {
	store *fieldstore.Store
	out   io.Writer
}

func (s *session) run(in io.Reader, interactive bool) error {
	if interactive {
		cyan := color.New(color.FgCyan, color.Bold)
		cyan.Fprintln(s.out, "Finite Field Calculator for F(p^m)")
		fmt.Fprintln(s.out, "Type :help for commands, :quit to exit.")
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(s.out, s.prompt())
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.handle(line) {
			return nil
		}
	}
	return scanner.Err()
}

func (s *session) prompt() string {
	snap, err := s.store.Current()
	if err != nil {
		return "F(?)> "
	}
	return fmt.Sprintf("F(%d^%d)> ", snap.Field.P(), snap.Field.M())
}

// handle processes one input line. It returns false when the session ends.
func (s *session) handle(line string) bool {
	if !strings.HasPrefix(line, ":") {
		s.evaluate(line)
		return true
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return false
	case ":help", ":h":
		fmt.Fprintln(s.out, "Commands: :init p m modulus, :field, :elements, :table, :inverses, :check poly, :reduce poly, :reset, :quit")
	case ":init":
		if len(fields) < 4 {
			PrintError(s.out, fmt.Errorf("usage: :init p m modulus"))
			return true
		}
		p, errP := strconv.Atoi(fields[1])
		m, errM := strconv.Atoi(fields[2])
		if errP != nil || errM != nil {
			PrintError(s.out, fmt.Errorf("please enter valid integer values for p and m"))
			return true
		}
		s.initialize(p, m, strings.Join(fields[3:], ""))
	case ":field":
		s.withField(func(f *galois.Field) { printSummary(s.out, f) })
	case ":elements":
		s.withField(func(f *galois.Field) { printElements(s.out, f) })
	case ":table":
		s.withField(func(f *galois.Field) { printMulTable(s.out, f) })
	case ":inverses":
		s.withField(func(f *galois.Field) { printInverses(s.out, f) })
	case ":check":
		if len(fields) < 2 {
			PrintError(s.out, fmt.Errorf("usage: :check poly"))
			return true
		}
		s.withField(func(f *galois.Field) { s.check(f, strings.Join(fields[1:], "")) })
	case ":reduce":
		if len(fields) < 2 {
			PrintError(s.out, fmt.Errorf("usage: :reduce poly"))
			return true
		}
		s.withField(func(f *galois.Field) { s.reduce(f, strings.Join(fields[1:], "")) })
	case ":reset":
		s.store.Clear()
		fmt.Fprintln(s.out, "Field cleared.")
	default:
		PrintError(s.out, fmt.Errorf("unknown command %s", fields[0]))
	}
	return true
}

func (s *session) initialize(p, m int, modulus string) {
	if err := validateFieldInput(p, m, modulus); err != nil {
		PrintError(s.out, err)
		return
	}
	snap, err := s.store.Initialize(p, m, modulus)
	if err != nil {
		PrintError(s.out, err)
		return
	}
	printSummary(s.out, snap.Field)
}

func (s *session) withField(fn func(f *galois.Field)) {
	snap, err := s.store.Current()
	if err != nil {
		PrintError(s.out, fmt.Errorf("please initialize the field first: %w", err))
		return
	}
	fn(snap.Field)
}

func (s *session) evaluate(line string) {
	s.withField(func(f *galois.Field) {
		res, err := evaluate(f, line)
		if err != nil {
			PrintError(s.out, err)
			return
		}
		printResult(s.out, res)
	})
}

func (s *session) check(f *galois.Field, input string) {
	poly, err := galois.Parse(input, f.P(), 0)
	if err != nil {
		PrintError(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "%s over F%d: %s\n", galois.Format(poly), f.P(), galois.CheckIrreducible(poly, f.P()))
}

func (s *session) reduce(f *galois.Field, input string) {
	poly, err := galois.Parse(input, f.P(), 0)
	if err != nil {
		PrintError(s.out, err)
		return
	}
	e := f.Normalize(poly)
	fmt.Fprintf(s.out, "%s mod %s = %s  ->  %s\n", galois.Format(poly), galois.Format(f.Modulus()), e, e.Vector())
}
