package cluster

import "fmt"

// State is the degree state of a node.
type State uint8

const (
	// Untouched: degree 0.
	Untouched State = iota
	// Leader: degree 1.
	Leader
	// Inside: degree 2.
	Inside
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case Leader:
		return "leader"
	case Inside:
		return "inside"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
