// Package solution persists solver output.
//
// A solution file is named S[<MODE>]<total>_<suffix>.sol (the mode tag is
// left out for the merge heuristic) and holds the closed tour as
// space-separated node ids, the start repeated at the end:
//
//	2 0 1 3 2
//
// ReadPath reads the same format back, which is what the "check" mode of the
// CLI consumes. Report captures one whole run as YAML.
package solution
