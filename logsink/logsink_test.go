package logsink_test

import (
	"testing"

	"github.com/katalvlaran/cxsynth/logsink"
)

// TestNoOp_DoesNotPanic locks in that the no-op sink is safe to call with
// any format/args combination, since both astar and mitm use it as their
// zero-value default.
func TestNoOp_DoesNotPanic(t *testing.T) {
	l := logsink.NoOp()
	l.Infof("max cost explored: %d", 3)
	l.Debugf("%d collisions", 7)
}

func TestNewConsole_DoesNotPanic(t *testing.T) {
	l := logsink.NewConsole()
	l.Infof("depth %d reached", 2)
}
