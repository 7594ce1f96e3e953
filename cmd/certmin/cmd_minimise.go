package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/certmin/domain"
	"github.com/katalvlaran/certmin/optimise"
)

var (
	problemPath string
	configPath  string
	listAll     bool
	workers     int
	boundary    string
	overlap     float64
)

// runMinimise solves the problem file and prints the result
func runMinimise(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if timeout > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, timeout)
		defer tcancel()
	}

	prob, err := loadProblem(problemPath)
	if err != nil {
		return err
	}
	opts, err := resolveOptions()
	if err != nil {
		return err
	}
	logger.Info("Minimising", zap.Stringer("objective", prob.objective), zap.Stringer("domain", prob.domain))

	out := cmd.OutOrStdout()
	if listAll {
		cands, rep, err := optimise.MinimiseAllContext(ctx, prob.objective, prob.domain, opts...)
		if err != nil {
			return err
		}
		printCandidates(out, cands)
		printReport(out, rep)

		return nil
	}

	res, err := optimise.MinimiseContext(ctx, prob.objective, prob.domain, opts...)
	if err != nil {
		return err
	}
	printResult(out, res)

	return nil
}

// resolveOptions layers the options file under the command-line overrides.
func resolveOptions() ([]optimise.Option, error) {
	cfg := optimise.DefaultConfig()
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if cfg, err = optimise.LoadConfig(f); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if boundary != "" {
		cfg.Boundary = boundary
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return append(opts, optimise.WithLogger(logger)), nil
}

// runSubproblems prints the region subproblems of the problem file
func runSubproblems(cmd *cobra.Command, args []string) error {
	prob, err := loadProblem(problemPath)
	if err != nil {
		return err
	}
	sps, err := optimise.BuildSubproblems(prob.objective, prob.domain, domain.WithOverlap(overlap))
	if err != nil {
		return err
	}
	logger.Debug("Built subproblems", zap.Int("count", len(sps)))

	out := cmd.OutOrStdout()
	for i, sp := range sps {
		fmt.Fprintf(out, "#%d %s on %v\n", i, sp, sp.Box)
		for j := 0; j < sp.Functions.Dimension(); j++ {
			fmt.Fprintf(out, "  g%d = %s\n", j, sp.Functions.Component(j))
		}
	}

	return nil
}

func printResult(w io.Writer, res optimise.Result) {
	fmt.Fprintf(w, "status: %s\n", res.Status)
	if res.Status != optimise.Found {
		printReport(w, res.Report)

		return
	}
	fmt.Fprintf(w, "point:  %v\n", res.Point)
	fmt.Fprintf(w, "value:  %v\n", res.Value)
	fmt.Fprintf(w, "kind:   %s\n", res.Kind)
	if res.Clipped {
		fmt.Fprintln(w, "note:   enclosure clipped to the domain; the stationary point may lie just outside")
	}
	for _, c := range res.Contenders {
		fmt.Fprintf(w, "contender: %v value %v (%s)\n", c.Point, c.Value, c.Kind)
	}
	printReport(w, res.Report)
}

func printCandidates(w io.Writer, cands []optimise.Candidate) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tPOINT\tVALUE")
	for _, c := range cands {
		fmt.Fprintf(tw, "%s\t%v\t%v\n", c.Kind, c.Point, c.Value)
	}
	_ = tw.Flush()
}

func printReport(w io.Writer, rep optimise.Report) {
	fmt.Fprintf(w, "faces: %d, subproblems: %d, non-converged: %d, discarded: %d\n",
		rep.Faces, rep.Subproblems, rep.NonConverged(), rep.Discarded)
	for _, rr := range rep.Regions {
		if rr.Outcome != optimise.OutcomeNonConverged {
			continue
		}
		fmt.Fprintf(w, "warning: face %s region %s did not converge (%d unresolved boxes)\n",
			rr.Face, rr.Region, rr.Unresolved)
	}
}
