// Package seqorder is a search-space toolkit for the Sequential Ordering
// Problem (SOP): find a minimum-cost tour from a fixed origin that visits
// every location once while respecting "visit A before B" constraints.
//
// What is inside:
//
//	instance/       instance loading (tab-separated matrix files), precedence
//	                sets, precedence cycle checks, tour cost and validation
//	sop/            the forward search space: partial-tour nodes, total and
//	                incremental children expansion, bound, guide, dominance key
//	search/         capability interfaces and a depth-first branch-and-bound
//	                driver with bound and prefix-equivalence pruning
//	cmd/sopsolve/   command-line solver
//
// Quick start:
//
//	inst, err := instance.Load("ESC07.sop")
//	space, err := sop.New(inst, sop.Partial)
//	dfs, err := search.NewDFS[*sop.ForwardNode, []int, sop.ForwardNodePE](
//		space, search.Partial[*sop.ForwardNode](space),
//		search.WithTimeLimit(10*time.Second))
//	res, err := dfs.WithDominance(space).Run(ctx)
//
// Matrix convention: entry (i, j) < 0 means j must be visited before i;
// entry (i, j) ≥ 0 is the cost of going from i straight to j.
//
// SPDX-License-Identifier: MIT
package seqorder
