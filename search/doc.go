// Package search drives a problem-specific search space with a depth-first
// branch-and-bound walk.
//
// The search space is consumed through small capability interfaces so a
// problem can implement only what it supports:
//
//   - Tree[N]:                 Root, Bound, Goal
//   - Space[N, S]:             Solution
//   - Guided[N]:               Guide
//   - TotalExpansion[N]:       Children (all at once)
//   - PartialExpansion[N]:     NextChild (one at a time, resumable)
//   - PrefixEquivalence[N, K]: PE, PrefixBound (dominance)
//
// DFS keeps the best goal found so far (the incumbent) and prunes:
//
//   - by bound: Bound(n) >= incumbent cost;
//   - by dominance (optional): another node with the same PE key and a
//     PrefixBound <= PrefixBound(n) was already generated.
//
// The run is anytime: it stops on context cancellation, time limit or a
// user stop predicate, evaluated every CheckEvery steps, and returns the
// incumbent with Complete=false.
//
// Errors:
//
//   - ErrNoSolution      the tree was exhausted without reaching a goal.
//   - ErrNilProblem      NewDFS received a nil problem or expander.
package search
