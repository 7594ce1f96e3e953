// Command certmin minimises a polynomial read from a YAML problem file and
// prints the certified minimiser.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/certmin/domain"
)

var (
	// Global flags
	verbose bool
	timeout time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "certmin",
	Short: "Certified global minimisation of multivariate polynomials",
	Long: `certmin finds the global minimum of a polynomial with rational
coefficients over a box, possibly unbounded, and certifies it with interval
arithmetic: every reported point encloses a true stationary point and every
reported value encloses the objective there.

Unbounded coordinates are handled by the reciprocal transform x = 1/t, so
the full space can be searched with a finite-box root finder.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
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

// minimiseCmd solves one problem file
var minimiseCmd = &cobra.Command{
	Use:   "minimise",
	Short: "Minimise the polynomial of a problem file",
	Long: `Reads a problem file and prints the certified global minimum.

Problem file:
  variables: 2
  terms:                       # 2x² − 6x + y² + 5
    - {coefficient: "2",  exponents: [2, 0]}
    - {coefficient: "-6", exponents: [1, 0]}
    - {coefficient: "1",  exponents: [0, 2]}
    - {coefficient: "5",  exponents: [0, 0]}
  domain:                      # optional; omitted means the full space
    - ["-inf", "inf"]
    - ["-1", "1"]

Coefficients are exact rationals ("3", "-1/5", "0.25").

Instead of (or on top of) terms, an expression tree may be given; its value
is added to the terms:
  expression:                  # (x − 1)·(x + y)
    op: mul                    # add, sub, mul or quo
    args:
      - {op: sub, args: [{variable: 0}, {constant: "1"}]}
      - {op: add, args: [{variable: 0}, {variable: 1}]}

Example:
  certmin minimise -f problem.yaml --workers 4
  certmin minimise -f problem.yaml --all --config options.yaml`,
	Aliases: []string{"minimize"},
	Args:    cobra.NoArgs,
	RunE:    runMinimise,
}

// subproblemsCmd prints the gradient systems the search would solve
var subproblemsCmd = &cobra.Command{
	Use:   "subproblems",
	Short: "List the region subproblems of a problem file",
	Long: `Partitions the problem's domain over the reference intervals and
prints, per region combination, the (reciprocal-transformed) gradient system
and the box it is solved on. Useful to see why a region did not converge.`,
	Args: cobra.NoArgs,
	RunE: runSubproblems,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")

	// Minimise flags
	minimiseCmd.Flags().StringVarP(&problemPath, "file", "f", "", "Problem file (required)")
	minimiseCmd.Flags().StringVar(&configPath, "config", "", "Options file (YAML)")
	minimiseCmd.Flags().BoolVar(&listAll, "all", false, "Print every candidate, not only the minimum")
	minimiseCmd.Flags().IntVar(&workers, "workers", 0, "Subproblems solved concurrently (overrides the options file)")
	minimiseCmd.Flags().StringVar(&boundary, "boundary", "", "Boundary policy: faces, corners or none (overrides the options file)")
	_ = minimiseCmd.MarkFlagRequired("file")

	subproblemsCmd.Flags().StringVarP(&problemPath, "file", "f", "", "Problem file (required)")
	subproblemsCmd.Flags().Float64Var(&overlap, "overlap", domain.DefaultOverlap, "Reference interval overlap, in [0, 1)")
	_ = subproblemsCmd.MarkFlagRequired("file")

	// Add commands to root
	rootCmd.AddCommand(minimiseCmd)
	rootCmd.AddCommand(subproblemsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
