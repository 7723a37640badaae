package astar

import (
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/logsink"
	"github.com/katalvlaran/cxsynth/operator"
)

// Operator is the constraint astar.Graph requires of a searched-over value:
// the search algebra of operator.Value[T], plus comparability so the
// graph's hash-bucketed dedup index can compare values with ==.
type Operator[T any] interface {
	operator.Value[T]
	comparable
}

// NodeIndex identifies a node in the search graph. The root is always 0.
type NodeIndex int

// edgeKind distinguishes the two ways a node can be reached.
type edgeKind int

const (
	edgeOp edgeKind = iota
	edgeMerge
)

// edge is a single incoming connection to a node: either a CX gate applied
// to one predecessor, or a merge of two predecessors.
type edge struct {
	kind edgeKind

	// valid when kind == edgeOp
	op  gate.Gate
	src NodeIndex

	// valid when kind == edgeMerge
	src1, src2 NodeIndex
	used       operator.QubitSet

	dst NodeIndex
}

// Srcs returns the edge's predecessor(s).
func (e edge) Srcs() []NodeIndex {
	if e.kind == edgeMerge {
		return []NodeIndex{e.src1, e.src2}
	}

	return []NodeIndex{e.src}
}

// Result is the outcome of a Search.
type Result struct {
	// Gates is the shortest gate sequence found, nil if none was found.
	Gates []gate.Gate
	// Found reports whether Gates is a valid solution.
	Found bool
	// DepthCapped reports whether the search stopped because the
	// configured depth cap was reached, rather than because the search
	// space was exhausted or an optimal solution was proven.
	DepthCapped bool
}

// Options configures Search.
type Options struct {
	depthCap int // <= 0 means unlimited
	logger   logsink.Logger
}

// Option is a functional option for Search, following this module's
// ambient configuration idiom.
type Option func(*Options)

// WithDepthCap stops the search once the maximum cost explored exceeds cap.
func WithDepthCap(cap int) Option {
	return func(o *Options) {
		o.depthCap = cap
	}
}

// WithLogger overrides the default no-op progress logger.
func WithLogger(logger logsink.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// DefaultOptions returns the zero-configuration defaults: no depth cap, no
// logging.
func DefaultOptions() Options {
	return Options{
		depthCap: 0,
		logger:   logsink.NoOp(),
	}
}
