// Package sop defines the forward search space of the Sequential Ordering
// Problem: partial tours grown from the origin one location at a time.
//
// What:
//
//   - ForwardNode: a partial tour (prefix, visited set, accumulated cost and
//     an expansion cursor). Nodes are values: every extension copies its
//     parent, siblings never share mutable state.
//   - ForwardSearch: the problem engine over an *instance.Instance. It
//     exposes Root, Bound, Guide, Goal, Solution, Children (total
//     expansion), NextChild (incremental expansion in ascending arc cost),
//     PE and PrefixBound (prefix-equivalence dominance).
//   - ForwardNodePE: comparable dominance key (last location, visited set).
//
// Feasibility:
//
//	c may follow node ⇔ c ∈ Successors(last) ∧ c ∉ visited ∧ Predecessors(c) ⊆ visited
//
// Feasible and both expansion methods share one precedence test; Children and NextChild
// yield the same set of locations and differ only in order and
// materialisation.
//
// Expansion strategies:
//
//   - Total:   Children scans successors in matrix column order and returns
//     every feasible extension at once.
//   - Partial: successors of every location are sorted once by ascending
//     arc cost (ties by location id); NextChild resumes from the node's
//     cursor and returns one extension per call.
//
// Complexity:
//
//   - New: O(n²) (Total) or O(n² log n) (Partial).
//   - Extend: O(n) (prefix and bitset copy).
//   - Children: O(n·(n + Σ|pred|/64)) per node.
//   - NextChild: amortised O(1) candidates per emitted child plus the feasibility test.
//   - PE: O(n).
package sop
