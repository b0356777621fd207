package tsp

import "fmt"

// reconstruct walks conns from start and returns the closed tour
// (n+1 entries, start repeated at the end). At every node the first unchecked
// connection in conns order is taken and marked checked.
//
// Errors: ErrInconsistent if a node touches more than two connections, a hop
// finds no unchecked connection, or the walk does not end where it began.
//
// Complexity: O(n + len(conns)).
func reconstruct(conns []Connection, start, n int) ([]int, error) {
	// incident[v] lists connection indices touching v in ascending order;
	// the degree bound keeps it at two entries.
	var (
		incident = make([][2]int, n)
		deg      = make([]int, n)
		i        int
	)
	for i = range conns {
		for _, v := range [2]int{conns[i].Left, conns[i].Right} {
			if deg[v] == 2 {
				return nil, fmt.Errorf("node %d has more than two connections: %w", v, ErrInconsistent)
			}
			incident[v][deg[v]] = i
			deg[v]++
		}
	}

	var (
		tour = make([]int, 0, n+1)
		cur  = start
		hop  int
	)
	for hop = 0; hop < n; hop++ {
		next := -1
		for k := 0; k < deg[cur]; k++ {
			if c := incident[cur][k]; !conns[c].Checked {
				next = c
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("hop %d: no unchecked connection at node %d: %w", hop, cur, ErrInconsistent)
		}

		conns[next].Checked = true
		tour = append(tour, cur)
		if conns[next].Left == cur {
			cur = conns[next].Right
		} else {
			cur = conns[next].Left
		}
	}
	if cur != start {
		return nil, fmt.Errorf("walk ended at node %d, not at start %d: %w", cur, start, ErrInconsistent)
	}

	return append(tour, start), nil
}
