package operator

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// StabiliserState is an X-stabiliser state on N ≤ 16 qubits, given by N rows
// each packed into a uint16. Unlike CXMatrix it has no Transpose, Mult or
// MultTranspose, and it is never used by the mitm package, whose search is
// typed on CXMatrix.
type StabiliserState struct {
	rows [16]uint16
	n    int
}

// NewStabiliserState returns the all-identity state on n qubits (row qb has
// only bit qb set, i.e. the stabiliser "X" on qubit qb and "I" elsewhere).
func NewStabiliserState(n int) StabiliserState {
	if n <= 0 || n > 16 {
		panic(fmt.Sprintf("operator: invalid stabiliser qubit count %d", n))
	}
	s := StabiliserState{n: n}
	for i := 0; i < n; i++ {
		s.rows[i] = 1 << uint(i)
	}

	return s
}

// FromRowStrings parses n rows of 'X'/'I' characters (one row per string,
// row length equal to n) into a StabiliserState.
func FromRowStrings(rows []string) (StabiliserState, error) {
	n := len(rows)
	if n == 0 || n > 16 {
		return StabiliserState{}, fmt.Errorf("operator: stabiliser row count %d out of range (0,16]", n)
	}
	s := StabiliserState{n: n}
	for i, row := range rows {
		var packed uint16
		for j, ch := range row {
			switch ch {
			case 'X':
				packed ^= 1 << uint(j)
			case 'I':
				// no-op: identity on this qubit
			default:
				return StabiliserState{}, fmt.Errorf("operator: invalid stabiliser character %q at row %d col %d", ch, i, j)
			}
		}
		s.rows[i] = packed
	}

	return s, nil
}

// N returns the number of stabiliser rows.
func (s StabiliserState) N() int {
	return s.n
}

// CX implements operator.Value: XORs the control row into the target row.
func (s StabiliserState) CX(ctrl, tgt int) StabiliserState {
	s.rows[tgt] ^= s.rows[ctrl]

	return s
}

// Dist counts mismatched rows, an admissible heuristic.
func (s StabiliserState) Dist(other StabiliserState) int {
	dist := 0
	for i := 0; i < s.n; i++ {
		if s.rows[i] != other.rows[i] {
			dist++
		}
	}

	return dist
}

// IsComplete reports whether row qb already matches target's row qb.
func (s StabiliserState) IsComplete(qb int, target StabiliserState) bool {
	return s.rows[qb] == target.rows[qb]
}

// Merge takes other's rows on the qubits named by used.
func (s StabiliserState) Merge(other StabiliserState, used QubitSet) StabiliserState {
	merged := s
	for _, qb := range used.Qubits() {
		merged.rows[qb] = other.rows[qb]
	}

	return merged
}

// Hash aggregates the row buffer into a 64-bit digest via xxhash.
func (s StabiliserState) Hash() uint64 {
	var buf [32]byte
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], s.rows[i])
	}

	return xxhash.Sum64(buf[:])
}

// Row returns the raw packed row qb, mainly useful for tests and fileio.
func (s StabiliserState) Row(qb int) uint16 {
	return s.rows[qb]
}
