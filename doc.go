// Package tspmerge approximates the symmetric Travelling Salesman Problem with
// a greedy fragment-merging heuristic, and ships exact baselines to measure it
// against.
//
// Layout:
//
//	matrix/           immutable lower-triangular distance table and its text parser
//	cluster/          per-node state and fragment ids (union-find)
//	tsp/              merge heuristic, brute force, Held–Karp, nearest neighbour, path cost
//	builder/          random instance generator
//	solution/         .sol files and YAML run reports
//	internal/config   koanf-backed settings (defaults, YAML, TSPMERGE_* env, flags)
//	internal/logging  logrus setup with optional file rotation
//	internal/cli      cobra command tree
//	cmd/tspmerge      the binary
//
// Quick start:
//
//	d, err := matrix.Parse(f)
//	if err != nil { ... }
//	res, err := tsp.Solve(d, tsp.DefaultOptions())
//	fmt.Println(res.Tour, res.Cost)
//
// Command line:
//
//	tspmerge original graph.txt
//	tspmerge check graph.txt S80_wcjunkins.sol
//	tspmerge generate 500 graph.txt --seed 7
package tspmerge
