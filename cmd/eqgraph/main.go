// Package: eqgraph/cmd/eqgraph
//
// main.go — the eqgraph command line: evaluate and pretty-print equation
// text, or run a full fit session from YAML.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/eqgraph/builder"
	"github.com/katalvlaran/eqgraph/literals"
	"github.com/katalvlaran/eqgraph/visitors"
)

var (
	// Global flags
	debug bool
	lets  []string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "eqgraph",
	Short: "Equation graph toolkit",
	Long: `eqgraph builds, prints and evaluates equation graphs.

Equations use a small expression language: identifiers, numbers, the binary
operators + - * / ** %, unary -, parentheses and function calls such as
max(a, b) or scale(x, by=2). Leaves are supplied with --let or through a
session file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config = zap.NewDevelopmentConfig()
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Build an equation and print its value",
	Long: `Builds the expression and evaluates it once.

Example:
  eqgraph eval "a + 2 * b" --let a=1 --let b=3`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [expression]",
	Short: "Parse an equation and print its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

var runCmd = &cobra.Command{
	Use:   "run [session.yaml]",
	Short: "Run a fit session from a YAML file",
	Long: `Loads parameters, constraints, restraints and report expressions
from a YAML session file, wires them into an organizer, then prints every
report value and restraint penalty.`,
	Args: cobra.ExactArgs(1),
	RunE: runSession,
}

// letFactory builds a Factory holding one leaf per --let name=value flag.
func letFactory() (*builder.Factory, error) {
	f := builder.NewFactory()
	for _, l := range lets {
		name, raw, ok := strings.Cut(l, "=")
		if !ok {
			return nil, fmt.Errorf("--let %q: want name=value", l)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("--let %q: %w", l, err)
		}
		if err = f.RegisterArgument(name, literals.NewArgument(name, literals.Scalar(v), false)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	f, err := letFactory()
	if err != nil {
		return err
	}
	root, err := f.Build(args[0], nil)
	if err != nil {
		return err
	}
	v, err := literals.Evaluate(root)
	if err != nil {
		return err
	}
	logger.Debug("evaluated", zap.String("expression", args[0]))
	fmt.Println(v)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	f, err := letFactory()
	if err != nil {
		return err
	}
	// Unknown identifiers only need to print, not evaluate: back each with a
	// placeholder leaf.
	names, err := f.Identifiers(args[0])
	if err != nil {
		return err
	}
	for _, name := range names {
		if f.Argument(name) == nil {
			if err = f.RegisterArgument(name, literals.NewArgument(name, literals.Scalar(0), false)); err != nil {
				return err
			}
		}
	}
	root, err := f.Build(args[0], nil)
	if err != nil {
		return err
	}
	out, err := visitors.Print(root)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose development logging")
	evalCmd.Flags().StringArrayVar(&lets, "let", nil, "bind a leaf, e.g. --let a=1.5 (repeatable)")
	fmtCmd.Flags().StringArrayVar(&lets, "let", nil, "bind a leaf, e.g. --let a=1.5 (repeatable)")
	rootCmd.AddCommand(evalCmd, fmtCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
