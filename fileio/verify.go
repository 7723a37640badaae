package fileio

import (
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/operator"
)

// Verify replays gates over source, in order, and reports whether the
// result equals target exactly. The CLI runs this immediately before
// writing a solution file, as the final correctness check before output.
func Verify[T comparable](source, target T, gates []gate.Gate, apply func(T, gate.Gate) T) bool {
	cur := source
	for _, g := range gates {
		cur = apply(cur, g)
	}

	return cur == target
}

// VerifyOperator is the operator.Value-flavoured convenience wrapper around
// Verify, using T.CX directly as the apply function. T must also be
// comparable, which both operator.CXMatrix and operator.StabiliserState are.
func VerifyOperator[T interface {
	operator.Value[T]
	comparable
}](source, target T, gates []gate.Gate) bool {
	return Verify(source, target, gates, func(v T, g gate.Gate) T {
		return v.CX(g.Ctrl, g.Tgt)
	})
}
