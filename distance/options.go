package distance

// EncodingPolicy selects how label columns are mapped to level indices.
type EncodingPolicy int

const (
	// SharedEncoding fits one label→level mapping on the union of the
	// treated and control columns, so equal labels always share a level.
	SharedEncoding EncodingPolicy = iota

	// IndependentEncoding fits each column on its own values. The same
	// level index may then denote different labels on each side, and the
	// categorical level count comes from the treated column only.
	IndependentEncoding
)

// DefaultEncoding is the policy used when no option is given.
const DefaultEncoding = SharedEncoding

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	encoding EncodingPolicy
}

// WithSharedEncoding selects SharedEncoding (the default).
func WithSharedEncoding() Option {
	return func(o *Options) { o.encoding = SharedEncoding }
}

// WithIndependentEncoding selects IndependentEncoding, reproducing the
// per-column encoding of earlier releases.
func WithIndependentEncoding() Option {
	return func(o *Options) { o.encoding = IndependentEncoding }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{encoding: DefaultEncoding}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
