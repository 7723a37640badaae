package mitm

import (
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/logsink"
	"github.com/katalvlaran/cxsynth/operator"
)

// Result is the outcome of a Search.
type Result struct {
	// Gates is the gate sequence found, nil if none was found. Applying
	// Gates in order to Search's source operator (the identity, unless
	// WithSource overrides it) yields the search target.
	Gates []gate.Gate
	// Found reports whether Gates is a valid solution.
	Found bool
}

// Options configures Search.
type Options struct {
	logger logsink.Logger
	source operator.CXMatrix
}

// Option is a functional option for Search.
type Option func(*Options)

// WithLogger overrides the default no-op progress logger.
func WithLogger(logger logsink.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithSource roots the forward BFS at source instead of the identity,
// for synthesizing a circuit between two arbitrary operators rather than
// from the identity.
func WithSource(source operator.CXMatrix) Option {
	return func(o *Options) {
		o.source = source
	}
}

// DefaultOptions returns the zero-configuration defaults: no logging, the
// forward BFS rooted at the identity.
func DefaultOptions() Options {
	return Options{logger: logsink.NoOp(), source: operator.IdentityCXMatrix()}
}
