package sop_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqorder/instance"
	"github.com/katalvlaran/seqorder/sop"
)

// seedDet is the fixed seed of every generated instance.
const seedDet = int64(7)

var (
	small4 = [][]int{
		{-1, 0, 3, 4},
		{-1, -1, 0, 2},
		{-1, 5, -1, 0},
		{-1, 2, 6, -1},
	}
	// prec6: 3 before 1; 2 and 4 before 5. Unique optimum 0 2 3 1 4 5 (cost 11).
	prec6 = [][]int{
		{0, 4, 2, 7, 3, 9},
		{-1, 0, 5, -1, 2, 6},
		{-1, 3, 0, 4, 8, 1},
		{-1, 1, 6, 0, 5, 3},
		{-1, 2, 7, 3, 0, 2},
		{-1, 4, -1, 2, -1, 0},
	}
)

func mustInstance(t testing.TB, name string, m [][]int) *instance.Instance {
	t.Helper()
	inst, err := instance.New(name, m)
	require.NoError(t, err)

	return inst
}

func mustSpace(t testing.TB, inst *instance.Instance, s sop.Strategy) *sop.ForwardSearch {
	t.Helper()
	fs, err := sop.New(inst, s)
	require.NoError(t, err)

	return fs
}

// randomMatrix builds an n-location SOP matrix: costs in [0, maxCost], the
// origin before everything, and each ordered pair (a, b) with a before b in a
// hidden random order constrained with probability density.
func randomMatrix(rng *rand.Rand, n, maxCost int, density float64) [][]int {
	var (
		m    = make([][]int, n)
		rank = make([]int, n)
		perm = rng.Perm(n - 1)
	)
	for i, p := range perm {
		rank[p+1] = i + 1
	}
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = rng.Intn(maxCost + 1)
			}
		}
	}
	for i := 1; i < n; i++ {
		m[i][0] = -1
		for j := 1; j < n; j++ {
			if i != j && rank[j] < rank[i] && rng.Float64() < density {
				m[i][j] = -1 // j must precede i
			}
		}
	}

	return m
}

// reachable enumerates every node reachable from the root via Children.
func reachable(fs *sop.ForwardSearch) []*sop.ForwardNode {
	var (
		out   []*sop.ForwardNode
		stack = []*sop.ForwardNode{fs.Root()}
	)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		stack = append(stack, fs.Children(n)...)
	}

	return out
}

// lasts returns the last location of every node.
func lasts(nodes []*sop.ForwardNode) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Last()
	}

	return out
}

// drain pulls every child of node through NextChild.
func drain(fs *sop.ForwardSearch, node *sop.ForwardNode) []*sop.ForwardNode {
	var out []*sop.ForwardNode
	for {
		c, ok := fs.NextChild(node)
		if !ok {
			return out
		}
		out = append(out, c)
	}
}
