// Package gate defines the single primitive this synthesizer ever emits: a
// controlled-NOT gate between two of the 16 qubits.
package gate

import (
	"errors"
	"fmt"
)

// NumQubits is the fixed qubit-register size this package operates on.
const NumQubits = 16

// ErrSameQubit indicates a CX gate was constructed with Ctrl == Tgt.
var ErrSameQubit = errors.New("gate: control and target qubit must differ")

// ErrQubitOutOfRange indicates a qubit index outside [0, NumQubits).
var ErrQubitOutOfRange = errors.New("gate: qubit index out of range")

// Gate is a CX (controlled-NOT) gate: applying it XORs the control row into
// the target row of whatever operator it acts on.
type Gate struct {
	Ctrl int
	Tgt  int
}

// New validates ctrl and tgt and returns the corresponding Gate.
func New(ctrl, tgt int) (Gate, error) {
	if ctrl < 0 || ctrl >= NumQubits || tgt < 0 || tgt >= NumQubits {
		return Gate{}, fmt.Errorf("%w: ctrl=%d tgt=%d", ErrQubitOutOfRange, ctrl, tgt)
	}
	if ctrl == tgt {
		return Gate{}, fmt.Errorf("%w: qubit=%d", ErrSameQubit, ctrl)
	}

	return Gate{Ctrl: ctrl, Tgt: tgt}, nil
}

// Reverse returns the gate with control and target swapped.
func (g Gate) Reverse() Gate {
	return Gate{Ctrl: g.Tgt, Tgt: g.Ctrl}
}

// String renders the gate as "CX(ctrl, tgt)", matching the notation used
// throughout the search packages' log lines.
func (g Gate) String() string {
	return fmt.Sprintf("CX(%d, %d)", g.Ctrl, g.Tgt)
}
