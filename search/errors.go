package search

import "errors"

var (
	// ErrNoSolution is returned by DFS.Run when the whole tree was explored
	// and no goal node exists.
	ErrNoSolution = errors.New("search: no feasible solution")

	// ErrNilProblem is returned when a nil problem or expander is supplied.
	ErrNilProblem = errors.New("search: problem or expander is nil")
)
