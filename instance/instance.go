package instance

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Origin is the fixed first location of every tour.
const Origin = 0

// Instance holds the immutable data of one SOP instance.
// All accessors are read-only; returned sets and slices must not be modified.
type Instance struct {
	name   string
	n      int
	matrix [][]int

	// Derived once at construction.
	predecessors []*roaring.Bitmap // j ∈ predecessors[i] ⇔ matrix[i][j] < 0, j ≠ i
	successors   []*roaring.Bitmap // j ∈ successors[i]   ⇔ matrix[i][j] ≥ 0, j ≠ i
	succOrder    [][]int           // successors[i] in column order
	predMask     []*bitset.BitSet  // predecessors[i] as a length-n bitset
}

// New builds an Instance from an in-memory square matrix.
// The matrix is copied; name is informational (Load uses the file path).
//
// Errors: ErrBadSize if the matrix is empty, ErrRowLength if it is not square.
//
// Complexity: O(n²).
func New(name string, matrix [][]int) (*Instance, error) {
	var n = len(matrix)
	if n == 0 {
		return nil, ErrBadSize
	}

	var (
		rows = make([][]int, n)
		i    int
	)
	for i = 0; i < n; i++ {
		if len(matrix[i]) != n {
			return nil, fmt.Errorf("row %d: got %d entries, want %d: %w", i, len(matrix[i]), n, ErrRowLength)
		}
		rows[i] = append([]int(nil), matrix[i]...)
	}

	return build(name, rows), nil
}

// build derives the precedence structure from a validated square matrix.
func build(name string, matrix [][]int) *Instance {
	var (
		n    = len(matrix)
		inst = &Instance{
			name:         name,
			n:            n,
			matrix:       matrix,
			predecessors: make([]*roaring.Bitmap, n),
			successors:   make([]*roaring.Bitmap, n),
			succOrder:    make([][]int, n),
			predMask:     make([]*bitset.BitSet, n),
		}
		i, j int
	)
	for i = 0; i < n; i++ {
		inst.predecessors[i] = roaring.New()
		inst.successors[i] = roaring.New()
		inst.predMask[i] = bitset.New(uint(n))
		inst.succOrder[i] = make([]int, 0, n-1)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			if matrix[i][j] < 0 {
				inst.predecessors[i].Add(uint32(j))
				inst.predMask[i].Set(uint(j))
			} else {
				inst.successors[i].Add(uint32(j))
				inst.succOrder[i] = append(inst.succOrder[i], j)
			}
		}
	}

	return inst
}

// Name returns the instance name (the file path for loaded instances).
func (inst *Instance) Name() string { return inst.name }

// N returns the number of locations, origin included.
func (inst *Instance) N() int { return inst.n }

// Predecessors returns the locations that must be visited before i.
func (inst *Instance) Predecessors(i int) *roaring.Bitmap { return inst.predecessors[i] }

// Successors returns the locations that may follow i directly.
func (inst *Instance) Successors(i int) *roaring.Bitmap { return inst.successors[i] }

// PossibleSuccessors returns Successors(i) in matrix column order.
func (inst *Instance) PossibleSuccessors(i int) []int { return inst.succOrder[i] }

// PredecessorMask returns Predecessors(i) as a bitset of length N().
func (inst *Instance) PredecessorMask(i int) *bitset.BitSet { return inst.predMask[i] }

// IsPredecessor reports whether j must be visited before i.
func (inst *Instance) IsPredecessor(i, j int) bool { return i != j && inst.matrix[i][j] < 0 }

// CostArc returns the matrix entry for the arc u→v.
// Both indices must be in [0, N()); the value is a cost only when v ∈ Successors(u).
func (inst *Instance) CostArc(u, v int) int { return inst.matrix[u][v] }

// Matrix returns a copy of the underlying matrix.
func (inst *Instance) Matrix() [][]int {
	var out = make([][]int, inst.n)
	for i := range inst.matrix {
		out[i] = append([]int(nil), inst.matrix[i]...)
	}

	return out
}
