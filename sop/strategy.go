package sop

import (
	"fmt"
	"strings"
)

// Strategy selects how children are materialised by a driver.
type Strategy int

const (
	// Total generates every feasible child at once (Children).
	Total Strategy = iota
	// Partial generates children one at a time in ascending arc cost (NextChild).
	Partial
)

// String returns the command-line name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Total:
		return "total"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "total" or "partial" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "total":
		return Total, nil
	case "partial":
		return Partial, nil
	default:
		return Total, fmt.Errorf("%q (expected total or partial): %w", s, ErrUnknownStrategy)
	}
}
