package sop

// Children returns every feasible extension of node, in matrix column order
// of the last location's successors.
func (s *ForwardSearch) Children(node *ForwardNode) []*ForwardNode {
	var (
		last = node.Last()
		res  []*ForwardNode
		c    int
	)
	for _, c = range s.inst.PossibleSuccessors(last) {
		if !s.ready(node, c) {
			continue
		}
		res = append(res, s.Extend(node, c))
	}

	return res
}

// NextChild returns the next feasible extension of node and advances the
// node's cursor past it. ok is false once the successor list is exhausted;
// further calls keep returning false.
//
// For a Partial space children come out in ascending arc cost from the
// last location. Every feasible location is returned exactly once per node.
func (s *ForwardSearch) NextChild(node *ForwardNode) (child *ForwardNode, ok bool) {
	var (
		row = s.order[node.Last()]
		c   int
	)
	for node.cursor < len(row) {
		c = row[node.cursor]
		node.cursor++
		if !s.ready(node, c) {
			continue
		}

		return s.Extend(node, c), true
	}

	return nil, false
}
