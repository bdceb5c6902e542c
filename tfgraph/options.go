// SPDX-License-Identifier: MIT

package tfgraph

import (
	"log/slog"

	"github.com/katalvlaran/framegraph/internal/logging"
	"github.com/katalvlaran/framegraph/rigid"
)

// Option configures a Graph at construction.
type Option func(*options)

type options struct {
	strict    bool
	check     bool
	tolerance float64
	cache     bool
	maxHops   int
	logger    *slog.Logger
	observer  Observer
}

func defaultOptions() options {
	return options{
		strict:    true,
		check:     true,
		tolerance: rigid.DefaultTolerance,
		cache:     true,
		logger:    logging.L(),
		observer:  NopObserver{},
	}
}

// WithStrictCheck selects the validation policy: true rejects invalid
// transforms, false repairs them and logs a warning. Default true.
func WithStrictCheck(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithCheck toggles validation on SetTransform. With false the caller
// asserts every value is a rigid transform. Default true.
func WithCheck(check bool) Option {
	return func(o *options) { o.check = check }
}

// WithTolerance sets the orthonormality tolerance; values <= 0 are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithCache toggles the chain cache. Default true.
func WithCache(enabled bool) Option {
	return func(o *options) { o.cache = enabled }
}

// WithMaxHops bounds the number of edges a resolved chain may span.
// Frames further apart than n edges report ErrNoPath. Zero, the default,
// means no bound; negative values are ignored.
func WithMaxHops(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxHops = n
		}
	}
}

// WithLogger sets the logger used for lenient-validation warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
