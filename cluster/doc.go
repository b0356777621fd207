// Package cluster tracks, for every node of a graph under construction, how
// many of its two tour edges are already placed and which connected fragment
// it belongs to.
//
// A node is in exactly one State:
//
//	Untouched: no accepted edge yet (group 0);
//	Leader:    one accepted edge, an endpoint of its fragment's path;
//	Inside:    two accepted edges, closed to further edges.
//
// Every touched node carries a group id. Ids are handed out by NewGroup from
// a counter that starts at 1, and Merge(keep, drop) relabels every node of
// group drop as keep. Callers that always keep the smaller id get a stable
// fragment identifier: the lowest id ever assigned inside the fragment.
//
// The Tracker is a disjoint-set forest over group slots with union by rank and
// path compression, plus a label per root. Reported ids are exactly those a
// naive "scan all nodes, rewrite drop to keep" implementation would report,
// at near-constant cost per Merge instead of O(n).
//
// A Tracker is not safe for concurrent use.
package cluster
