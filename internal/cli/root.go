// Package cli implements the tspmerge command line.
//
//	tspmerge <mode> <inputFile> [pathFile]
//
// Modes: original (merge heuristic), brute, exact, nearest, check, and
// generate <n> <outFile>. An unknown or missing mode prints usage and exits 0.
package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wcjunkins/tspmerge/internal/config"
	"github.com/wcjunkins/tspmerge/internal/logging"
	"github.com/wcjunkins/tspmerge/tsp"
)

// Execute runs the command line with args and returns the exit status.
func Execute(version string, args []string, stdout, stderr io.Writer) int {
	r := &runner{stdout: stdout, stderr: stderr}
	defer r.close()

	root := r.command(version)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// runner holds per-process state shared by the subcommands.
type runner struct {
	stdout, stderr io.Writer
	configFile     string

	runID    string
	cfg      *config.Config
	log      *log.Entry
	closeLog func() error
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"out-dir":         "output.dir",
	"suffix":          "output.suffix",
	"report":          "output.report",
	"quiet":           "output.quiet",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"log-file":        "log.file",
	"max-brute-nodes": "solver.max_brute_nodes",
	"max-exact-nodes": "solver.max_exact_nodes",
	"seed":            "generate.seed",
	"min-weight":      "generate.min_weight",
	"max-weight":      "generate.max_weight",
}

func (r *runner) command(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tspmerge <mode> <inputFile> [pathFile]",
		Short: "Approximate symmetric TSP tours from a lower-triangular distance table",
		Long: `tspmerge reads a lower-triangular distance table (row i holds the
distances from node i to nodes 0..i) and builds a closed tour.

The default "original" mode grows the tour greedily from the cheapest edges,
merging path fragments until a single Hamiltonian cycle remains.`,
		Args:              cobra.ArbitraryArgs,
		RunE:              r.usage,
		PersistentPreRunE: r.setup,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&r.configFile, "config", "c", "", "YAML config file")
	pf.String("out-dir", ".", "directory for solution files")
	pf.String("suffix", config.DefaultSuffix, "solution file name suffix")
	pf.String("report", "", "write a YAML run report to this path")
	pf.BoolP("quiet", "q", false, "do not print accepted edges")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.String("log-file", "", "write logs to a rotated file instead of stderr")

	root.AddCommand(
		r.solveCommand(tsp.Merge, "merge"),
		r.solveCommand(tsp.Brute),
		r.solveCommand(tsp.Exact),
		r.solveCommand(tsp.Nearest),
		r.checkCommand(),
		r.generateCommand(),
	)

	return root
}

// usage handles the root command: any argument here is an unknown mode.
func (r *runner) usage(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		fmt.Fprintf(r.stdout, "Unknown mode %q\n", args[0])
	}

	return cmd.Usage()
}

// setup loads configuration and the logger for a mode subcommand.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	if cmd == cmd.Root() {
		return nil
	}

	cfg, err := config.Load(
		config.WithFile(r.configFile),
		config.WithOverrides(overrides(cmd.Flags())),
	)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log, r.stderr)
	if err != nil {
		return err
	}

	r.cfg = cfg
	r.closeLog = closeLog
	r.runID = uuid.NewString()
	r.log = logger.WithFields(log.Fields{
		"run_id": r.runID,
		"mode":   cmd.Name(),
	})
	r.log.WithField("config", r.configFile).Debug("configuration loaded")

	return nil
}

func (r *runner) close() {
	if r.closeLog != nil {
		_ = r.closeLog()
	}
}

// overrides collects the flags set on the command line as config keys.
func overrides(fs *pflag.FlagSet) map[string]any {
	out := make(map[string]any)
	fs.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			out[key] = f.Value.String()
		}
	})

	return out
}
