package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wcjunkins/tspmerge/solution"
	"github.com/wcjunkins/tspmerge/tsp"
)

func (r *runner) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <inputFile> <pathFile>",
		Short: "Sum the distances along the node sequence in pathFile",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return r.check(args[0], args[1])
		},
	}
}

func (r *runner) check(input, pathFile string) error {
	d, err := readMatrix(input)
	if err != nil {
		return err
	}

	f, err := os.Open(pathFile)
	if err != nil {
		return errors.Wrapf(err, "open %s", pathFile)
	}
	defer f.Close()

	path, err := solution.ReadPath(f)
	if err != nil {
		return errors.WithMessagef(err, "read %s", pathFile)
	}

	fmt.Fprintln(r.stdout, "Checking the total distance of the path in the provided file")
	total, steps, err := tsp.PathCost(d, path)
	if err != nil {
		return errors.WithMessagef(err, "check %s", pathFile)
	}
	if !r.cfg.Output.Quiet {
		for _, s := range steps {
			fmt.Fprintln(r.stdout, s)
		}
	}
	fmt.Fprintf(r.stdout, "Total path distance: %s\n", tsp.FormatCost(total))

	r.log.WithFields(log.Fields{
		"input": input,
		"path":  pathFile,
		"hops":  len(steps),
		"total": total,
	}).Info("path checked")

	return nil
}
