package routing

import (
	da "github.com/lintang-b-s/Waypointx/pkg/datastructure"
)

// Options are the optional constraints of a single search.
type Options struct {
	MaxLength    int         // exact number of waypoints the route must visit
	HasMaxLength bool        // MaxLength is only enforced when set
	Forbidden    da.IndexSet // waypoints the route must not visit
}

// Option represents a functional option for a search.
type Option func(*Options)

// WithMaxLength pins the number of waypoints the route visits, start and end included.
// Values below 2 are rejected by the search with ErrMaxLengthTooSmall.
func WithMaxLength(maxLength int) Option {
	return func(o *Options) {
		o.MaxLength = maxLength
		o.HasMaxLength = true
	}
}

// WithForbidden excludes waypoints from the route. The set is copied.
func WithForbidden(forbidden da.IndexSet) Option {
	return func(o *Options) {
		o.Forbidden = forbidden.Clone()
	}
}

// DefaultOptions: any route length, nothing forbidden.
func DefaultOptions() Options {
	return Options{
		Forbidden: da.NewIndexSet(),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
