package search

import (
	"context"
	"log/slog"
	"time"
)

// Result is the outcome of a DFS run.
type Result[S any] struct {
	Solution S    // best solution found; zero value when Found is false
	Cost     int  // Bound of the best goal node
	Found    bool // at least one goal node was reached
	Complete bool // the tree was exhausted: a found solution is optimal
	Stats    Stats
}

// DFS is a depth-first branch-and-bound driver over a search space with
// node type N, solution type S and dominance key K.
// A DFS is not safe for concurrent use; Run may be called repeatedly.
type DFS[N, S any, K comparable] struct {
	problem Problem[N, S]
	expand  Expander[N]
	pe      PrefixEquivalence[N, K]
	opts    Options
}

// NewDFS builds a driver. opts are applied over DefaultOptions.
func NewDFS[N, S any, K comparable](p Problem[N, S], exp Expander[N], opts ...Option) (*DFS[N, S, K], error) {
	if p == nil || exp == nil {
		return nil, ErrNilProblem
	}
	var o = DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &DFS[N, S, K]{problem: p, expand: exp, opts: o}, nil
}

// WithDominance enables prefix-equivalence pruning through pe and returns d.
func (d *DFS[N, S, K]) WithDominance(pe PrefixEquivalence[N, K]) *DFS[N, S, K] {
	d.pe = pe

	return d
}

// frame is one level of the explicit DFS stack.
type frame[N any] struct {
	node     N
	children Cursor[N]
}

// run holds the mutable state of a single Run call.
type run[N, S any, K comparable] struct {
	*DFS[N, S, K]
	ctx      context.Context
	start    time.Time
	deadline time.Time
	steps    int

	best     N
	bestCost int
	found    bool
	seen     map[K]int
	stats    Stats
}

// Run explores the tree from the root until it is exhausted or a stop
// condition fires, and returns the best solution found.
//
// Errors: ErrNoSolution when the tree was exhausted without a goal; a
// stopped run without a goal returns Found=false and a nil error.
func (d *DFS[N, S, K]) Run(ctx context.Context) (Result[S], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var r = &run[N, S, K]{DFS: d, ctx: ctx, start: time.Now()}
	if d.opts.TimeLimit > 0 {
		r.deadline = r.start.Add(d.opts.TimeLimit)
	}
	if d.pe != nil {
		r.seen = make(map[K]int)
	}

	complete := r.explore()
	r.stats.Elapsed = time.Since(r.start)

	var res = Result[S]{Cost: r.bestCost, Found: r.found, Complete: complete, Stats: r.stats}
	if r.found {
		res.Solution = d.problem.Solution(r.best)
	}
	d.opts.Logger.Info("search finished",
		slog.Bool("found", res.Found),
		slog.Bool("complete", res.Complete),
		slog.Int("cost", res.Cost),
		slog.Any("stats", res.Stats),
	)
	if complete && !r.found {
		return res, ErrNoSolution
	}

	return res, nil
}

// explore walks the tree and reports whether it was exhausted.
func (r *run[N, S, K]) explore() bool {
	var (
		root  = r.problem.Root()
		stack []frame[N]
	)
	r.stats.Generated++
	if !r.admit(root) {
		return true
	}
	stack = append(stack, frame[N]{node: root})

	for len(stack) > 0 {
		if r.shouldStop() {
			return false
		}
		top := &stack[len(stack)-1]

		// 1. Goal: record and backtrack.
		if r.problem.Goal(top.node) {
			r.improve(top.node)
			stack = stack[:len(stack)-1]
			continue
		}

		// 2. Re-check the bound: the incumbent may have improved since push.
		if r.found && r.problem.Bound(top.node) >= r.bestCost {
			r.stats.PrunedBound++
			stack = stack[:len(stack)-1]
			continue
		}

		// 3. Open on first visit.
		if top.children == nil {
			top.children = r.expand.Open(top.node)
			r.stats.Expanded++
		}

		// 4. Descend into the next admissible child or backtrack.
		child, ok := top.children.Next()
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		r.stats.Generated++
		if !r.admit(child) {
			continue
		}
		stack = append(stack, frame[N]{node: child})
		if len(stack) > r.stats.MaxDepth {
			r.stats.MaxDepth = len(stack)
		}
	}

	return true
}

// admit applies bound and dominance pruning to a freshly generated node.
func (r *run[N, S, K]) admit(node N) bool {
	if r.found && r.problem.Bound(node) >= r.bestCost {
		r.stats.PrunedBound++

		return false
	}
	if r.seen == nil {
		return true
	}
	var (
		key = r.pe.PE(node)
		pb  = r.pe.PrefixBound(node)
	)
	if prev, ok := r.seen[key]; ok && prev <= pb {
		r.stats.PrunedDominance++

		return false
	}
	r.seen[key] = pb

	return true
}

// improve records node as incumbent when it beats the current one.
func (r *run[N, S, K]) improve(node N) {
	var cost = r.problem.Bound(node)
	if r.found && cost >= r.bestCost {
		return
	}
	r.best, r.bestCost, r.found = node, cost, true
	r.stats.Solutions++
	r.opts.Logger.Info("new incumbent",
		slog.Int("cost", cost),
		slog.Duration("elapsed", time.Since(r.start)),
		slog.Int("expanded", r.stats.Expanded),
	)
}

// shouldStop evaluates cancellation, deadline and the stop predicate every
// CheckEvery calls.
func (r *run[N, S, K]) shouldStop() bool {
	r.steps++
	if r.steps%r.opts.CheckEvery != 0 {
		return false
	}
	if r.ctx.Err() != nil {
		return true
	}
	if !r.deadline.IsZero() && time.Now().After(r.deadline) {
		return true
	}
	if r.opts.Stop != nil {
		r.stats.Elapsed = time.Since(r.start)
		if r.opts.Stop(r.stats) {
			return true
		}
	}

	return false
}
