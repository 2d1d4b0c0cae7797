package sop

import "errors"

var (
	// ErrNilInstance is returned when New receives a nil instance.
	ErrNilInstance = errors.New("sop: instance is nil")

	// ErrUnknownStrategy is returned by ParseStrategy for anything other
	// than "total" or "partial".
	ErrUnknownStrategy = errors.New("sop: unknown expansion strategy")
)
