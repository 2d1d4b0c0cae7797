package instance

import "fmt"

// Visitation colours for the precedence cycle search.
const (
	white = iota // not reached yet
	gray         // on the current DFS path
	black        // fully explored
)

// CheckPrecedence verifies that the precedence relation admits at least one
// ordering starting at the origin:
//   - the origin has no predecessors (ErrOriginConstrained);
//   - the relation "j must precede i" is acyclic (ErrPrecedenceCycle).
//
// An instance failing these checks has no feasible tour; search over it
// terminates without reaching a goal.
//
// Complexity: O(n²) time, O(n) memory.
func (inst *Instance) CheckPrecedence() error {
	if !inst.predecessors[Origin].IsEmpty() {
		return fmt.Errorf("origin requires %v: %w", inst.predecessors[Origin].ToArray(), ErrOriginConstrained)
	}

	var (
		state = make([]int, inst.n)
		stack = make([]cycleFrame, 0, inst.n)
		v     int
	)
	for v = 0; v < inst.n; v++ {
		if state[v] != white {
			continue
		}
		if u, ok := inst.findCycle(v, state, stack[:0]); ok {
			return fmt.Errorf("location %d reaches itself through its predecessors: %w", u, ErrPrecedenceCycle)
		}
	}

	return nil
}

// cycleFrame is one level of the iterative DFS over predecessor lists.
type cycleFrame struct {
	v    int
	next int // next candidate predecessor column to inspect
}

// findCycle runs an iterative three-colour (white/gray/black) DFS from root
// along predecessor arcs, the topological-sort cycle test applied to
// predecessor sets instead of an adjacency graph.
// It returns the location closing a back arc, if any.
func (inst *Instance) findCycle(root int, state []int, stack []cycleFrame) (int, bool) {
	state[root] = gray
	stack = append(stack, cycleFrame{v: root})
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= inst.n {
			state[top.v] = black
			stack = stack[:len(stack)-1]
			continue
		}
		u := top.next
		top.next++
		if !inst.IsPredecessor(top.v, u) {
			continue
		}
		switch state[u] {
		case gray:
			return u, true
		case white:
			state[u] = gray
			stack = append(stack, cycleFrame{v: u})
		}
	}

	return 0, false
}
