package sop

import "github.com/bits-and-blooms/bitset"

// ForwardNodePE is the prefix-equivalence key of a node: its last location
// and its visited set. Nodes with equal keys have the same feasible
// completions at the same future cost, so only the cheapest needs exploring.
//
// The type is comparable: == is structural equality and it can key a map.
type ForwardNodePE struct {
	last    int
	visited string // visited set packed 8 locations per byte, little-endian bit order
}

// Last returns the last visited location of the keyed state.
func (k ForwardNodePE) Last() int { return k.last }

// Visited decodes the visited set of the keyed state.
func (k ForwardNodePE) Visited() *bitset.BitSet {
	var (
		out = bitset.New(uint(len(k.visited) * 8))
		i   int
	)
	for i = 0; i < len(k.visited)*8; i++ {
		if k.visited[i>>3]&(1<<(i&7)) != 0 {
			out.Set(uint(i))
		}
	}

	return out
}

// PE returns the dominance key of node.
func (s *ForwardSearch) PE(node *ForwardNode) ForwardNodePE {
	var (
		buf     = make([]byte, (s.inst.N()+7)/8)
		i       uint
		present bool
	)
	for i, present = node.added.NextSet(0); present; i, present = node.added.NextSet(i + 1) {
		buf[i>>3] |= 1 << (i & 7)
	}

	return ForwardNodePE{last: node.Last(), visited: string(buf)}
}

// PrefixBound returns the value compared among nodes sharing a PE key.
func (s *ForwardSearch) PrefixBound(node *ForwardNode) int { return node.cost }
