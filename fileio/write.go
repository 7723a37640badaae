package fileio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/cxsynth/gate"
)

// WriteSolution writes one "ctrl tgt" line per gate, in order, matching the
// format ParseCircuit/ParseMoves read back.
func WriteSolution(w io.Writer, gates []gate.Gate) error {
	for _, g := range gates {
		if _, err := fmt.Fprintf(w, "%d %d\n", g.Ctrl, g.Tgt); err != nil {
			return err
		}
	}

	return nil
}
