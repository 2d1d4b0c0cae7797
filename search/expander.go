package search

import (
	"cmp"
	"slices"
)

// Expander opens a node for expansion and returns a cursor over its children.
type Expander[N any] interface {
	Open(node N) Cursor[N]
}

// Cursor yields the children of one node.
type Cursor[N any] interface {
	Next() (N, bool)
}

// Total adapts a TotalExpansion. Children are stably sorted by guide, so
// equal guides keep the order in which the space generated them.
func Total[N any](exp TotalExpansion[N], g Guided[N]) Expander[N] {
	return totalExpander[N]{exp: exp, guide: g}
}

// Partial adapts a PartialExpansion; children are pulled lazily in the
// order the space produces them.
func Partial[N any](exp PartialExpansion[N]) Expander[N] {
	return partialExpander[N]{exp: exp}
}

type totalExpander[N any] struct {
	exp   TotalExpansion[N]
	guide Guided[N]
}

func (t totalExpander[N]) Open(node N) Cursor[N] {
	var children = t.exp.Children(node)
	if t.guide != nil && len(children) > 1 {
		var rs = make([]ranked[N], len(children))
		for i, c := range children {
			rs[i] = ranked[N]{node: c, key: t.guide.Guide(c)}
		}
		slices.SortStableFunc(rs, func(a, b ranked[N]) int { return cmp.Compare(a.key, b.key) })
		for i := range rs {
			children[i] = rs[i].node
		}
	}

	return &sliceCursor[N]{items: children}
}

// ranked pairs a child with its guide for sorting.
type ranked[N any] struct {
	node N
	key  float64
}

type sliceCursor[N any] struct {
	items []N
	pos   int
}

func (c *sliceCursor[N]) Next() (N, bool) {
	var zero N
	if c.pos >= len(c.items) {
		return zero, false
	}
	c.pos++

	return c.items[c.pos-1], true
}

type partialExpander[N any] struct {
	exp PartialExpansion[N]
}

func (p partialExpander[N]) Open(node N) Cursor[N] {
	return &pullCursor[N]{exp: p.exp, node: node}
}

type pullCursor[N any] struct {
	exp  PartialExpansion[N]
	node N
}

func (c *pullCursor[N]) Next() (N, bool) { return c.exp.NextChild(c.node) }
