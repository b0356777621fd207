package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wcjunkins/tspmerge/builder"
)

func (r *runner) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <n> <outFile>",
		Short: "Write a random complete n-node distance table",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return r.generate(args[0], args[1])
		},
	}
	cmd.Flags().Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	cmd.Flags().Int("min-weight", builder.DefaultMinWeight, "smallest edge weight")
	cmd.Flags().Int("max-weight", builder.DefaultMaxWeight, "largest edge weight")

	return cmd
}

func (r *runner) generate(count, out string) error {
	n, err := strconv.Atoi(count)
	if err != nil {
		return errors.Wrapf(err, "node count %q", count)
	}

	gc := r.cfg.Generate
	opts := []builder.Option{builder.WithWeightFn(builder.UniformIntWeightFn(gc.MinWeight, gc.MaxWeight))}
	if gc.Seed != 0 {
		opts = append(opts, builder.WithSeed(gc.Seed))
	}

	rows, err := builder.Generate(n, opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "create %s", out)
	}
	if err = builder.WriteTo(f, rows); err != nil {
		_ = f.Close()
		return errors.WithMessagef(err, "write %s", out)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", out)
	}

	fmt.Fprintf(r.stdout, "Generated a %d-node graph in %s\n", n, out)
	r.log.WithFields(log.Fields{"nodes": n, "output": out, "seed": gc.Seed}).Info("graph generated")

	return nil
}
