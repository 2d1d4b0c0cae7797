package sop

import (
	"cmp"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/seqorder/instance"
)

// ForwardSearch is the forward SOP search space over one instance.
// It holds no per-node state and is safe for concurrent use once built.
type ForwardSearch struct {
	inst     *instance.Instance
	strategy Strategy
	order    [][]int // per-location successor order walked by NextChild
}

// New builds a search space over inst.
//
// With Partial, the successors of every location are sorted once by
// ascending arc cost, ties broken by location id. With Total, NextChild
// walks successors in matrix column order.
//
// Complexity: O(n²) for Total, O(n² log n) for Partial.
func New(inst *instance.Instance, strategy Strategy) (*ForwardSearch, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if strategy != Total && strategy != Partial {
		return nil, ErrUnknownStrategy
	}

	var (
		s = &ForwardSearch{inst: inst, strategy: strategy}
		n = inst.N()
		u int
	)
	s.order = make([][]int, n)
	for u = 0; u < n; u++ {
		if strategy == Total {
			s.order[u] = inst.PossibleSuccessors(u)
			continue
		}
		s.order[u] = sortedSuccessors(inst, u)
	}

	return s, nil
}

// Load reads the instance at path and builds a search space over it.
func Load(path string, strategy Strategy) (*ForwardSearch, error) {
	inst, err := instance.Load(path)
	if err != nil {
		return nil, err
	}

	return New(inst, strategy)
}

// sortedSuccessors returns Successors(u) ordered by ascending CostArc(u, ·),
// ties by location id.
func sortedSuccessors(inst *instance.Instance, u int) []int {
	var row = slices.Clone(inst.PossibleSuccessors(u))
	slices.SortFunc(row, func(a, b int) int {
		if c := cmp.Compare(inst.CostArc(u, a), inst.CostArc(u, b)); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	return row
}

// Instance returns the underlying instance.
func (s *ForwardSearch) Instance() *instance.Instance { return s.inst }

// Strategy returns the expansion strategy the space was built for.
func (s *ForwardSearch) Strategy() Strategy { return s.strategy }

// Root returns the tour holding only the origin, with zero cost.
func (s *ForwardSearch) Root() *ForwardNode {
	var added = bitset.New(uint(s.inst.N()))
	added.Set(instance.Origin)

	return &ForwardNode{
		prefix: []int{instance.Origin},
		added:  added,
	}
}

// Bound returns the accumulated cost of node. Arc costs are non-negative,
// so it never decreases along a root-to-node path and never exceeds the
// cost of any completion.
func (s *ForwardSearch) Bound(node *ForwardNode) int { return node.cost }

// Guide returns the exploration priority of node; lower is preferred.
func (s *ForwardSearch) Guide(node *ForwardNode) float64 { return float64(node.cost) }

// Goal reports whether node visits every location.
func (s *ForwardSearch) Goal(node *ForwardNode) bool { return len(node.prefix) == s.inst.N() }

// Solution returns a copy of the tour of a goal node.
// Calling it on a non-goal node is a contract violation; it panics only in
// builds tagged sopdebug.
func (s *ForwardSearch) Solution(node *ForwardNode) []int {
	if debugChecks && !s.Goal(node) {
		panic("sop: Solution called on a non-goal node")
	}

	return slices.Clone(node.prefix)
}

// Feasible reports whether c may be appended to node: c is a successor of
// the last location, not yet visited, and all its predecessors are visited.
func (s *ForwardSearch) Feasible(node *ForwardNode, c int) bool {
	if c < 0 || c >= s.inst.N() || !s.inst.Successors(node.Last()).Contains(uint32(c)) {
		return false
	}

	return s.ready(node, c)
}

// ready checks the visited and precedence parts of feasibility for a
// location already known to be a successor of node.Last().
func (s *ForwardSearch) ready(node *ForwardNode, c int) bool {
	return !node.added.Test(uint(c)) && node.added.IsSuperSet(s.inst.PredecessorMask(c))
}

// Extend returns a new node equal to node with c appended.
// The parent is left untouched; the child's cursor starts at 0.
// Extend does not check feasibility.
func (s *ForwardSearch) Extend(node *ForwardNode, c int) *ForwardNode {
	var prefix = make([]int, len(node.prefix)+1)
	copy(prefix, node.prefix)
	prefix[len(node.prefix)] = c

	return &ForwardNode{
		prefix: prefix,
		added:  node.added.Clone().Set(uint(c)),
		cost:   node.cost + s.inst.CostArc(node.Last(), c),
	}
}
