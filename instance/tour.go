package instance

import "fmt"

// TourCost sums CostArc over consecutive pairs of seq.
// seq may be a partial tour; ErrForbiddenArc is returned when an arc has a
// negative entry, ErrInvalidTour when an index is out of range.
//
// Complexity: O(len(seq)).
func (inst *Instance) TourCost(seq []int) (int, error) {
	var (
		sum  int
		i, c int
	)
	for i = range seq {
		if seq[i] < 0 || seq[i] >= inst.n {
			return 0, fmt.Errorf("position %d: location %d out of range: %w", i, seq[i], ErrInvalidTour)
		}
		if i == 0 {
			continue
		}
		c = inst.matrix[seq[i-1]][seq[i]]
		if c < 0 {
			return 0, fmt.Errorf("arc %d→%d: %w", seq[i-1], seq[i], ErrForbiddenArc)
		}
		sum += c
	}

	return sum, nil
}

// ValidateTour checks that seq is a complete feasible tour:
//   - len(seq) == N() and seq[0] == Origin;
//   - every location appears exactly once;
//   - every location appears after all of its predecessors.
//
// Complexity: O(n + Σ|pred|).
func (inst *Instance) ValidateTour(seq []int) error {
	if len(seq) != inst.n {
		return fmt.Errorf("length %d, want %d: %w", len(seq), inst.n, ErrInvalidTour)
	}
	if seq[0] != Origin {
		return fmt.Errorf("starts at %d: %w", seq[0], ErrInvalidTour)
	}

	var (
		pos = make([]int, inst.n)
		i   int
		v   int
	)
	for i = range pos {
		pos[i] = -1
	}
	for i, v = range seq {
		if v < 0 || v >= inst.n || pos[v] >= 0 {
			return fmt.Errorf("position %d: location %d out of range or repeated: %w", i, v, ErrInvalidTour)
		}
		pos[v] = i
	}

	for v = 0; v < inst.n; v++ {
		it := inst.predecessors[v].Iterator()
		for it.HasNext() {
			p := int(it.Next())
			if pos[p] > pos[v] {
				return fmt.Errorf("%d visited before its predecessor %d: %w", v, p, ErrPrecedenceViolated)
			}
		}
	}

	return nil
}
