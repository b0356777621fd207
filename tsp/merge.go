package tsp

import (
	"fmt"

	"github.com/wcjunkins/tspmerge/cluster"
	"github.com/wcjunkins/tspmerge/matrix"
)

// verdict is what the builder does with one candidate edge.
type verdict uint8

const (
	reject        verdict = iota
	startFragment         // untouched + untouched
	joinFragments         // leader + leader, different groups
	extendPath            // leader + untouched, either order
)

// transitions is indexed by [state(From)][state(To)]. The leader/leader entry
// is further refused when both ends already share a group.
var transitions = [3][3]verdict{
	cluster.Untouched: {cluster.Untouched: startFragment, cluster.Leader: extendPath, cluster.Inside: reject},
	cluster.Leader:    {cluster.Untouched: extendPath, cluster.Leader: joinFragments, cluster.Inside: reject},
	cluster.Inside:    {cluster.Untouched: reject, cluster.Leader: reject, cluster.Inside: reject},
}

// cycleBuilder accumulates accepted connections for one run of TSPMerge.
// All run state lives here; nothing is shared between runs.
type cycleBuilder struct {
	dist  *matrix.Distance
	nodes *cluster.Tracker

	conns []Connection
	trace []Step
	cost  float64

	onAccept func(Step)
}

func newCycleBuilder(d *matrix.Distance, onAccept func(Step)) *cycleBuilder {
	n := d.Len()

	return &cycleBuilder{
		dist:     d,
		nodes:    cluster.New(n),
		conns:    make([]Connection, 0, n),
		trace:    make([]Step, 0, n),
		onAccept: onAccept,
	}
}

// consume offers the sorted edges in order. Once n-1 connections exist the
// only two leaders share a group, so every later edge would be refused and
// the scan stops early.
func (b *cycleBuilder) consume(edges []Edge) {
	var last = b.nodes.Len() - 1
	for _, e := range edges {
		if len(b.conns) == last {
			return
		}
		b.offer(e)
	}
}

// offer applies the transition table to e and reports whether it was accepted.
func (b *cycleBuilder) offer(e Edge) bool {
	var (
		u, v   = e.From, e.To
		su, sv = b.nodes.State(u), b.nodes.State(v)
	)

	switch transitions[su][sv] {
	case startFragment:
		g := b.nodes.NewGroup()
		b.nodes.MakeLeader(u, g)
		b.nodes.MakeLeader(v, g)

	case joinFragments:
		if b.nodes.SameGroup(u, v) {
			return false // would close a sub-cycle
		}
		gu, gv := b.nodes.Group(u), b.nodes.Group(v)
		b.nodes.MakeInside(u)
		b.nodes.MakeInside(v)
		b.nodes.Merge(min(gu, gv), max(gu, gv))

	case extendPath:
		leader, fresh := u, v
		if su != cluster.Leader {
			leader, fresh = v, u
		}
		b.nodes.MakeInside(leader)
		b.nodes.MakeLeader(fresh, b.nodes.Group(leader))

	default:
		return false
	}

	b.accept(u, v, e.Weight)

	return true
}

// accept records the connection u–v of weight w.
func (b *cycleBuilder) accept(u, v int, w float64) {
	b.conns = append(b.conns, Connection{Left: u, Right: v})
	b.cost += w
	step := Step{From: u, Weight: w, To: v}
	b.trace = append(b.trace, step)
	if b.onAccept != nil {
		b.onAccept(step)
	}
}

// close joins the two remaining path endpoints and returns the first one,
// which is where the tour starts. Endpoints are found by ascending id: the
// first leader becomes the start, the last one the other end.
//
// Errors: ErrInconsistent when a node was never connected or the number of
// leaders is not two.
func (b *cycleBuilder) close() (int, error) {
	if c := b.nodes.Count(cluster.Untouched); c > 0 {
		return 0, fmt.Errorf("%d node(s) never connected; zero distances are read as missing edges: %w", c, ErrInconsistent)
	}
	leaders := b.nodes.Leaders()
	if len(leaders) != 2 {
		return 0, fmt.Errorf("%d leader(s) after building, want 2: %w", len(leaders), ErrInconsistent)
	}

	a, z := leaders[0], leaders[len(leaders)-1]
	b.accept(a, z, b.dist.MustAt(a, z))

	return a, nil
}

// TSPMerge runs the greedy fragment-merging heuristic on d.
//
// Steps:
//  1. EdgeIndex: non-zero pairs sorted ascending, stable on discovery order.
//  2. Build: accept each edge per the transition table
//     (untouched+untouched opens a group; leader+untouched extends a path;
//     leader+leader of different groups merges them, keeping the smaller id;
//     everything else is refused). Ends with n-1 connections.
//  3. Close: connect the two remaining leaders (n connections).
//  4. Retrace: walk the connections from the first leader.
//
// opts.OnAccept is called for every accepted edge, closing edge included.
//
// Errors: ErrDimensionMismatch for a nil matrix; ErrInconsistent if an
// invariant breaks (see close and reconstruct).
//
// Complexity: O(n² log n) time, O(n²) memory.
func TSPMerge(d *matrix.Distance, opts Options) (TSResult, error) {
	if d == nil {
		return TSResult{}, ErrDimensionMismatch
	}

	b := newCycleBuilder(d, opts.OnAccept)
	b.consume(EdgeIndex(d))

	start, err := b.close()
	if err != nil {
		return TSResult{}, err
	}

	tour, err := reconstruct(b.conns, start, d.Len())
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: b.cost, Trace: b.trace}, nil
}
