package search

// Tree is the minimal search tree: a root, an admissible bound and a goal test.
type Tree[N any] interface {
	Root() N
	// Bound never decreases from a node to its descendants and never
	// exceeds the cost of any goal below it.
	Bound(node N) int
	Goal(node N) bool
}

// Space materialises the solution of a goal node.
type Space[N, S any] interface {
	// Solution must only be called when Goal(node) holds.
	Solution(node N) S
}

// Guided ranks nodes; lower guides are explored first.
type Guided[N any] interface {
	Guide(node N) float64
}

// TotalExpansion returns every child of a node at once.
type TotalExpansion[N any] interface {
	Children(node N) []N
}

// PartialExpansion returns the children of a node one by one. Each call
// resumes after the previously returned child; ok is false when exhausted.
type PartialExpansion[N any] interface {
	NextChild(node N) (child N, ok bool)
}

// PrefixEquivalence groups nodes with identical futures under a comparable
// key; within a group only nodes with the minimal PrefixBound are kept.
type PrefixEquivalence[N any, K comparable] interface {
	PE(node N) K
	PrefixBound(node N) int
}

// Problem is what DFS needs beyond expansion.
type Problem[N, S any] interface {
	Tree[N]
	Space[N, S]
}
