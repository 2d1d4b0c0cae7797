package sop

import "github.com/bits-and-blooms/bitset"

// ForwardNode is a partial tour starting at the origin.
//
// Invariants:
//   - len(prefix) == added.Count() and prefix[0] == instance.Origin;
//   - cost == Σ CostArc(prefix[k], prefix[k+1]);
//   - every prefix[k] had all its predecessors in added when appended.
//
// Nodes are created only by ForwardSearch.Root and ForwardSearch.Extend.
// The only field that changes after creation is cursor, advanced by
// ForwardSearch.NextChild.
type ForwardNode struct {
	prefix []int
	added  *bitset.BitSet
	cost   int
	cursor int // next index into the sorted successor list of Last()
}

// Prefix returns the visited locations in visiting order.
// The slice is shared with the node and must not be modified.
func (n *ForwardNode) Prefix() []int { return n.prefix }

// Len returns the number of visited locations, origin included.
func (n *ForwardNode) Len() int { return len(n.prefix) }

// Cost returns the accumulated arc cost along Prefix.
func (n *ForwardNode) Cost() int { return n.cost }

// Last returns the most recently visited location.
func (n *ForwardNode) Last() int { return n.prefix[len(n.prefix)-1] }

// Visited reports whether location i is in the prefix.
func (n *ForwardNode) Visited(i int) bool { return n.added.Test(uint(i)) }

// Cursor returns the expansion cursor position.
func (n *ForwardNode) Cursor() int { return n.cursor }
