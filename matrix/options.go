// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Build.

package matrix

import "runtime"

// panicWorkersInvalid is raised by WithWorkers for negative counts.
const panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 0"

// Option mutates build options.
type Option func(*Options)

// Options stores the effective Build configuration.
type Options struct {
	workers int // 0 ⇒ runtime.GOMAXPROCS(0)
}

// WithWorkers bounds the number of rows scored concurrently.
// Zero selects runtime.GOMAXPROCS(0); one makes Build fully sequential.
// Panics on negative values (programmer error).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
