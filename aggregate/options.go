package aggregate

import "github.com/katalvlaran/discrepancy/distance"

// DefaultParallelism evaluates covariates one at a time.
const DefaultParallelism = 1

const panicParallelismInvalid = "aggregate: WithParallelism: n must be >= 1"

// Option mutates internal options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	parallelism int
	distance    []distance.Option
}

// WithParallelism evaluates up to n covariate distances concurrently.
// Accumulation still happens in covariate order, so the result is
// identical to the sequential one. Peak memory grows to O(n·m·k).
//
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.parallelism = n }
}

// WithDistanceOptions forwards options to distance.Covariate for every
// covariate (e.g. distance.WithIndependentEncoding()).
func WithDistanceOptions(opts ...distance.Option) Option {
	return func(o *Options) { o.distance = append(o.distance, opts...) }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{parallelism: DefaultParallelism}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
