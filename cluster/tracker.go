package cluster

// Tracker holds per-node State and group membership.
//
// Layout:
//   - state[v], slot[v]: per node; slot is an index into the forest. All
//     nodes start in one slot labelled 0.
//   - parent/rank/label: disjoint-set forest over slots; label is meaningful
//     on roots only and is the group id every member reports.
//   - root: live group id -> root slot. A group id is live while at least
//     one slot resolves to it.
type Tracker struct {
	state []State
	slot  []int

	parent []int
	rank   []int
	label  []int
	root   map[int]int

	next int // next id returned by NewGroup
}

// New returns a Tracker for n nodes, all Untouched in group 0.
//
// Complexity: O(n).
func New(n int) *Tracker {
	t := &Tracker{
		state:  make([]State, n),
		slot:   make([]int, n), // all zero: the group-0 slot below
		parent: []int{0},
		rank:   []int{0},
		label:  []int{0},
		root:   map[int]int{0: 0},
		next:   1,
	}

	return t
}

// Len returns the number of tracked nodes.
func (t *Tracker) Len() int { return len(t.state) }

// State returns the state of node v.
func (t *Tracker) State(v int) State { return t.state[v] }

// Group returns the group id of node v (0 while untouched).
//
// Complexity: amortized O(α(n)).
func (t *Tracker) Group(v int) int {
	return t.label[t.find(t.slot[v])]
}

// SameGroup reports whether u and v report the same group id.
func (t *Tracker) SameGroup(u, v int) bool {
	return t.find(t.slot[u]) == t.find(t.slot[v])
}

// NewGroup reserves the next group id. Ids start at 1 and never repeat.
func (t *Tracker) NewGroup() int {
	g := t.next
	t.next++

	return g
}

// MakeLeader moves v to Leader and places it in group g. A group id that is
// not live yet (typically fresh from NewGroup) starts a new fragment.
func (t *Tracker) MakeLeader(v, g int) {
	t.state[v] = Leader
	t.assign(v, g)
}

// MakeInside moves v to Inside. Its group is unchanged.
func (t *Tracker) MakeInside(v int) {
	t.state[v] = Inside
}

// Merge relabels every node of group drop as keep. It is a no-op when
// keep == drop or no node currently reports drop. Afterwards no node reports
// drop; the number of live groups shrinks by one or stays equal.
//
// Complexity: amortized O(α(n)).
func (t *Tracker) Merge(keep, drop int) {
	if keep == drop {
		return
	}
	rd, ok := t.root[drop]
	if !ok {
		return
	}
	delete(t.root, drop)

	rk, ok := t.root[keep]
	if !ok {
		// keep is not live: drop's fragment simply changes its label.
		t.label[rd] = keep
		t.root[keep] = rd

		return
	}

	// Union by rank; the surviving root carries keep's label.
	r := rk
	switch {
	case t.rank[rk] < t.rank[rd]:
		t.parent[rk] = rd
		r = rd
	case t.rank[rk] > t.rank[rd]:
		t.parent[rd] = rk
	default:
		t.parent[rd] = rk
		t.rank[rk]++
	}
	t.label[r] = keep
	t.root[keep] = r
}

// Leaders returns the Leader nodes in ascending id order.
func (t *Tracker) Leaders() []int {
	var out []int
	for v, s := range t.state {
		if s == Leader {
			out = append(out, v)
		}
	}

	return out
}

// Count returns how many nodes are in state s.
func (t *Tracker) Count(s State) int {
	var c int
	for _, x := range t.state {
		if x == s {
			c++
		}
	}

	return c
}

// assign points v at the fragment labelled g, creating it when g is not live.
func (t *Tracker) assign(v, g int) {
	if r, ok := t.root[g]; ok {
		t.slot[v] = r
		return
	}
	s := len(t.parent)
	t.parent = append(t.parent, s)
	t.rank = append(t.rank, 0)
	t.label = append(t.label, g)
	t.root[g] = s
	t.slot[v] = s
}

// find returns the root slot of s, compressing the path on the way up.
func (t *Tracker) find(s int) int {
	for t.parent[s] != s {
		t.parent[s] = t.parent[t.parent[s]]
		s = t.parent[s]
	}

	return s
}
