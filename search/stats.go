package search

import (
	"log/slog"
	"time"
)

// Stats are the counters of one DFS run.
type Stats struct {
	Generated       int           // nodes produced by the expander, root included
	Expanded        int           // nodes opened for expansion
	PrunedBound     int           // nodes discarded by Bound >= incumbent
	PrunedDominance int           // nodes discarded by a prefix-equivalent node
	Solutions       int           // improving goal nodes found
	MaxDepth        int           // deepest stack level reached
	Elapsed         time.Duration // wall-clock time since Run started
}

// LogValue renders the counters as a slog group.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generated", s.Generated),
		slog.Int("expanded", s.Expanded),
		slog.Int("pruned_bound", s.PrunedBound),
		slog.Int("pruned_dominance", s.PrunedDominance),
		slog.Int("solutions", s.Solutions),
		slog.Int("max_depth", s.MaxDepth),
		slog.Duration("elapsed", s.Elapsed),
	)
}
