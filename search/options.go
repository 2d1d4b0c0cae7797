package search

import (
	"log/slog"
	"time"
)

// defaultCheckEvery is how many node events pass between stop checks.
const defaultCheckEvery = 1024

// Option configures a DFS run.
type Option func(*Options)

// Options holds the run policy of a DFS.
type Options struct {
	// TimeLimit stops the run once exceeded; zero means no limit.
	TimeLimit time.Duration

	// Stop, if non-nil, is evaluated between steps; returning true ends the run.
	Stop func(Stats) bool

	// CheckEvery is the number of node events between stop checks (≥1).
	CheckEvery int

	// Logger receives incumbent and summary records. Defaults to a
	// discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns Options with no limits, checks every 1024 events
// and logging disabled.
func DefaultOptions() Options {
	return Options{
		CheckEvery: defaultCheckEvery,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithTimeLimit returns an Option bounding the wall-clock duration of Run.
// Non-positive durations disable the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.TimeLimit = d
		}
	}
}

// WithStop returns an Option installing a stop predicate.
func WithStop(fn func(Stats) bool) Option {
	return func(o *Options) {
		o.Stop = fn
	}
}

// WithCheckEvery returns an Option setting the stop-check period.
// Values below 1 are ignored.
func WithCheckEvery(k int) Option {
	return func(o *Options) {
		if k >= 1 {
			o.CheckEvery = k
		}
	}
}

// WithLogger returns an Option routing run logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
