package search_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqorder/instance"
	"github.com/katalvlaran/seqorder/search"
	"github.com/katalvlaran/seqorder/sop"
)

type sopDFS = search.DFS[*sop.ForwardNode, []int, sop.ForwardNodePE]

var (
	small4 = [][]int{
		{-1, 0, 3, 4},
		{-1, -1, 0, 2},
		{-1, 5, -1, 0},
		{-1, 2, 6, -1},
	}
	prec6 = [][]int{
		{0, 4, 2, 7, 3, 9},
		{-1, 0, 5, -1, 2, 6},
		{-1, 3, 0, 4, 8, 1},
		{-1, 1, 6, 0, 5, 3},
		{-1, 2, 7, 3, 0, 2},
		{-1, 4, -1, 2, -1, 0},
	}
)

// newDFS wires a sop space into a driver for the given strategy.
func newDFS(t testing.TB, m [][]int, s sop.Strategy, dominance bool, opts ...search.Option) (*sopDFS, *instance.Instance) {
	t.Helper()
	inst, err := instance.New("test", m)
	require.NoError(t, err)
	fs, err := sop.New(inst, s)
	require.NoError(t, err)

	var exp search.Expander[*sop.ForwardNode]
	if s == sop.Partial {
		exp = search.Partial[*sop.ForwardNode](fs)
	} else {
		exp = search.Total[*sop.ForwardNode](fs, fs)
	}
	d, err := search.NewDFS[*sop.ForwardNode, []int, sop.ForwardNodePE](fs, exp, opts...)
	require.NoError(t, err)
	if dominance {
		d.WithDominance(fs)
	}

	return d, inst
}

// bruteForce returns the optimal cost over all feasible tours, or -1.
func bruteForce(m [][]int) int {
	var (
		n       = len(m)
		best    = -1
		visited = make([]bool, n)
		rec     func(last, depth, cost int)
	)
	rec = func(last, depth, cost int) {
		if depth == n {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		for c := 0; c < n; c++ {
			if visited[c] || m[last][c] < 0 {
				continue
			}
			ok := true
			for p := 0; p < n; p++ {
				if p != c && m[c][p] < 0 && !visited[p] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			visited[c] = true
			rec(c, depth+1, cost+m[last][c])
			visited[c] = false
		}
	}
	visited[0] = true
	rec(0, 1, 0)

	return best
}

func randomMatrix(rng *rand.Rand, n, maxCost int, density float64) [][]int {
	var (
		m    = make([][]int, n)
		rank = make([]int, n)
	)
	for i, p := range rng.Perm(n - 1) {
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
				m[i][j] = -1
			}
		}
	}

	return m
}

func TestDFS_Small4Reference(t *testing.T) {
	for _, s := range []sop.Strategy{sop.Total, sop.Partial} {
		for _, dom := range []bool{false, true} {
			d, _ := newDFS(t, small4, s, dom)
			res, err := d.Run(context.Background())
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.True(t, res.Complete)
			assert.Equal(t, 0, res.Cost)
			assert.Equal(t, []int{0, 1, 2, 3}, res.Solution, "strategy %v dominance %v", s, dom)
		}
	}
}

func TestDFS_Prec6Reference(t *testing.T) {
	for _, s := range []sop.Strategy{sop.Total, sop.Partial} {
		d, inst := newDFS(t, prec6, s, true)
		res, err := d.Run(context.Background())
		require.NoError(t, err)
		assert.True(t, res.Complete)
		assert.Equal(t, 11, res.Cost)
		assert.Equal(t, []int{0, 2, 3, 1, 4, 5}, res.Solution)
		assert.NoError(t, inst.ValidateTour(res.Solution))
		assert.GreaterOrEqual(t, res.Stats.Solutions, 1)
		assert.Equal(t, 6, res.Stats.MaxDepth)
	}
}

func TestDFS_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 12; round++ {
		n := 4 + round%5
		m := randomMatrix(rng, n, 40, 0.3)
		want := bruteForce(m)
		require.GreaterOrEqual(t, want, 0, "generated instances are feasible")

		for _, s := range []sop.Strategy{sop.Total, sop.Partial} {
			for _, dom := range []bool{false, true} {
				d, inst := newDFS(t, m, s, dom)
				res, err := d.Run(context.Background())
				require.NoError(t, err)
				assert.True(t, res.Complete)
				assert.Equal(t, want, res.Cost, "round %d n=%d strategy %v dominance %v", round, n, s, dom)
				require.NoError(t, inst.ValidateTour(res.Solution))
				cost, err := inst.TourCost(res.Solution)
				require.NoError(t, err)
				assert.Equal(t, res.Cost, cost)
			}
		}
	}
}

func TestDFS_DominancePrunes(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := randomMatrix(rng, 9, 30, 0.1)

	plain, _ := newDFS(t, m, sop.Partial, false)
	rp, err := plain.Run(context.Background())
	require.NoError(t, err)

	dom, _ := newDFS(t, m, sop.Partial, true)
	rd, err := dom.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, rp.Cost, rd.Cost)
	assert.Zero(t, rp.Stats.PrunedDominance)
	assert.Positive(t, rd.Stats.PrunedDominance)
	assert.LessOrEqual(t, rd.Stats.Expanded, rp.Stats.Expanded)
}

func TestDFS_NoSolution(t *testing.T) {
	// 1 needs 2 and 2 needs 1.
	m := [][]int{
		{0, 1, 1},
		{-1, 0, -1},
		{-1, -1, 0},
	}
	d, _ := newDFS(t, m, sop.Total, true)
	res, err := d.Run(context.Background())
	assert.ErrorIs(t, err, search.ErrNoSolution)
	assert.False(t, res.Found)
	assert.True(t, res.Complete)
	assert.Nil(t, res.Solution)
}

func TestDFS_SingleLocation(t *testing.T) {
	d, _ := newDFS(t, [][]int{{0}}, sop.Partial, true)
	res, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Solution)
	assert.Equal(t, 0, res.Cost)
}

func TestDFS_StopPredicate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := randomMatrix(rng, 10, 50, 0.05)
	calls := 0
	d, _ := newDFS(t, m, sop.Partial, false,
		search.WithCheckEvery(1),
		search.WithStop(func(s search.Stats) bool {
			calls++
			return s.Expanded >= 3
		}),
	)
	res, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Equal(t, 3, res.Stats.Expanded)
	assert.Positive(t, calls)
}

func TestDFS_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d, _ := newDFS(t, prec6, sop.Total, true, search.WithCheckEvery(1))
	res, err := d.Run(ctx)
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.False(t, res.Found)
}

func TestDFS_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	m := randomMatrix(rng, 8, 10, 0.2) // small cost range: many guide ties
	var first search.Result[[]int]
	for i := 0; i < 3; i++ {
		d, _ := newDFS(t, m, sop.Total, true)
		res, err := d.Run(context.Background())
		require.NoError(t, err)
		res.Stats.Elapsed = 0
		if i == 0 {
			first = res
			continue
		}
		assert.Equal(t, first, res)
	}
}

func TestDFS_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	d, _ := newDFS(t, prec6, sop.Partial, true, search.WithLogger(logger))
	_, err := d.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "new incumbent")
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "stats.expanded=")
}

func TestNewDFS_Nil(t *testing.T) {
	_, err := search.NewDFS[*sop.ForwardNode, []int, sop.ForwardNodePE](nil, nil)
	assert.ErrorIs(t, err, search.ErrNilProblem)
}

func TestOptions(t *testing.T) {
	o := search.DefaultOptions()
	assert.Equal(t, 1024, o.CheckEvery)
	assert.NotNil(t, o.Logger)

	for _, fn := range []search.Option{
		search.WithCheckEvery(0),
		search.WithTimeLimit(-1),
		search.WithLogger(nil),
	} {
		fn(&o)
	}
	assert.Equal(t, 1024, o.CheckEvery)
	assert.Zero(t, o.TimeLimit)
	assert.NotNil(t, o.Logger)
}
