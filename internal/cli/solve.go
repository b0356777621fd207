package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wcjunkins/tspmerge/matrix"
	"github.com/wcjunkins/tspmerge/solution"
	"github.com/wcjunkins/tspmerge/tsp"
)

var solveShort = map[tsp.Algorithm]string{
	tsp.Merge:   "Greedy fragment-merging heuristic",
	tsp.Brute:   "Exhaustive permutation search (small inputs only)",
	tsp.Exact:   "Held–Karp dynamic programming (small inputs only)",
	tsp.Nearest: "Nearest-neighbour walk from node 0",
}

func (r *runner) solveCommand(algo tsp.Algorithm, aliases ...string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     algo.String() + " <inputFile>",
		Aliases: aliases,
		Short:   solveShort[algo],
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return r.solve(algo, args[0])
		},
	}
	switch algo {
	case tsp.Brute:
		cmd.Flags().Int("max-brute-nodes", tsp.DefaultMaxBruteNodes, "refuse inputs with more nodes")
	case tsp.Exact:
		cmd.Flags().Int("max-exact-nodes", tsp.DefaultMaxExactNodes, "refuse inputs with more nodes")
	}

	return cmd
}

func (r *runner) solve(algo tsp.Algorithm, input string) error {
	start := time.Now()

	d, err := readMatrix(input)
	if err != nil {
		return err
	}
	r.log.WithFields(log.Fields{"input": input, "nodes": d.Len()}).Info("graph loaded")
	fmt.Fprintf(r.stdout, "Running %s algorithm\n", strings.ToUpper(algo.String()))

	opts := tsp.Options{
		Algo:          algo,
		MaxBruteNodes: r.cfg.Solver.MaxBruteNodes,
		MaxExactNodes: r.cfg.Solver.MaxExactNodes,
	}
	if !r.cfg.Output.Quiet {
		opts.OnAccept = func(s tsp.Step) {
			fmt.Fprintln(r.stdout, s)
		}
	}

	res, err := tsp.Solve(d, opts)
	if err != nil {
		return errors.WithMessagef(err, "solve %s", input)
	}

	name := solution.FileName(algo, res.Cost, r.cfg.Output.Suffix)
	out, err := solution.Write(r.cfg.Output.Dir, name, res.Tour)
	if err != nil {
		return err
	}

	if err = solution.WritePath(r.stdout, res.Tour); err != nil {
		return err
	}
	fmt.Fprintf(r.stdout, "Total Distance: %s\n", tsp.FormatCost(res.Cost))
	fmt.Fprintf(r.stdout, "A copy of the complete path has been saved to the file %s\n", out)

	elapsed := time.Since(start)
	r.log.WithFields(log.Fields{
		"total":   res.Cost,
		"output":  out,
		"elapsed": elapsed,
	}).Info("tour built")

	if r.cfg.Output.Report == "" {
		return nil
	}

	rep := solution.Report{
		RunID:    r.runID,
		Mode:     algo.String(),
		Input:    input,
		Nodes:    d.Len(),
		Total:    res.Cost,
		Tour:     res.Tour,
		Trace:    res.Trace,
		Output:   out,
		Elapsed:  elapsed,
		Finished: time.Now().UTC(),
	}

	return writeReport(r.cfg.Output.Report, rep)
}

func readMatrix(path string) (*matrix.Distance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	d, err := matrix.Parse(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "parse %s", path)
	}

	return d, nil
}

func writeReport(path string, rep solution.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create report %s", path)
	}
	if err = solution.WriteReport(f, rep); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "close report %s", path)
}
