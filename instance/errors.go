// Package instance: sentinel error set.
//
// Loading errors are wrapped with line/column context at the point of
// detection; callers match them with errors.Is.
package instance

import "errors"

var (
	// ErrOpen is returned when the instance file cannot be opened or read.
	ErrOpen = errors.New("instance: cannot read instance file")

	// ErrEmpty signals an input without the leading size line.
	ErrEmpty = errors.New("instance: empty input")

	// ErrBadSize signals a size line that is not a positive integer.
	ErrBadSize = errors.New("instance: invalid number of locations")

	// ErrRowLength signals a matrix row whose token count differs from n.
	ErrRowLength = errors.New("instance: row has wrong number of entries")

	// ErrBadToken signals a matrix entry that is not an integer.
	ErrBadToken = errors.New("instance: non-integer matrix entry")

	// ErrMissingRows signals fewer than n matrix rows.
	ErrMissingRows = errors.New("instance: missing matrix rows")

	// ErrPrecedenceCycle signals that the precedence relation is cyclic,
	// so no feasible tour exists.
	ErrPrecedenceCycle = errors.New("instance: precedence constraints form a cycle")

	// ErrOriginConstrained signals that the origin (location 0) has predecessors.
	ErrOriginConstrained = errors.New("instance: origin has predecessors")

	// ErrInvalidTour signals a sequence that is not a permutation of
	// {0..n-1} starting at the origin.
	ErrInvalidTour = errors.New("instance: sequence is not a tour from the origin")

	// ErrPrecedenceViolated signals a tour visiting a location before one
	// of its predecessors.
	ErrPrecedenceViolated = errors.New("instance: precedence constraint violated")

	// ErrForbiddenArc signals a tour using an arc with a negative matrix entry.
	ErrForbiddenArc = errors.New("instance: tour uses a precedence arc")
)
