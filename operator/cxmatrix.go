package operator

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/cxsynth/gate"
)

// CXMatrix is a 16×16 invertible GF(2) matrix, represented by its 16 rows,
// each packed into a uint16. Row i of the identity has only bit i set.
//
// CXMatrix is a plain comparable array wrapper: equal matrices compare
// equal with ==, and are usable directly as Go map keys.
type CXMatrix struct {
	rows [16]uint16
}

// IdentityCXMatrix returns the 16-qubit identity operator.
func IdentityCXMatrix() CXMatrix {
	var m CXMatrix
	for i := 0; i < 16; i++ {
		m.rows[i] = 1 << uint(i)
	}

	return m
}

// FromGates builds a CXMatrix by applying gates in order, starting from the
// identity.
func FromGates(gates []gate.Gate) CXMatrix {
	m := IdentityCXMatrix()
	for _, g := range gates {
		m = m.AddCX(g.Ctrl, g.Tgt)
	}

	return m
}

// AddCX returns the matrix after applying CX(ctrl, tgt): row[tgt] ^= row[ctrl].
func (m CXMatrix) AddCX(ctrl, tgt int) CXMatrix {
	m.rows[tgt] ^= m.rows[ctrl]

	return m
}

// CX implements operator.Value.
func (m CXMatrix) CX(ctrl, tgt int) CXMatrix {
	return m.AddCX(ctrl, tgt)
}

// Dist counts the rows that differ from other, an admissible heuristic: at
// least one CX gate is needed per mismatched row.
func (m CXMatrix) Dist(other CXMatrix) int {
	dist := 0
	for i := 0; i < 16; i++ {
		if m.rows[i] != other.rows[i] {
			dist++
		}
	}

	return dist
}

// IsComplete reports whether row qb already matches target's row qb.
func (m CXMatrix) IsComplete(qb int, target CXMatrix) bool {
	return m.rows[qb] == target.rows[qb]
}

// Merge takes other's rows on the qubits named by used, keeping the
// receiver's rows elsewhere.
func (m CXMatrix) Merge(other CXMatrix, used QubitSet) CXMatrix {
	merged := m
	for _, qb := range used.Qubits() {
		merged.rows[qb] = other.rows[qb]
	}

	return merged
}

// Hash aggregates the 32-byte row buffer into a 64-bit digest via xxhash,
// aggregating the row buffer into four u64 words before hashing
// without resorting to unsafe memory reinterpretation.
func (m CXMatrix) Hash() uint64 {
	var buf [32]byte
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], m.rows[i])
	}

	return xxhash.Sum64(buf[:])
}

// Mult returns the composition self∘other (apply other, then self).
func (m CXMatrix) Mult(other CXMatrix) CXMatrix {
	return m.MultTranspose(other.Transpose())
}

// MultTranspose returns self∘otherTransposed, computed row-by-row via
// bitwise-AND population counts: a GF(2) matrix product that avoids
// materializing the intermediate transpose twice.
func (m CXMatrix) MultTranspose(otherT CXMatrix) CXMatrix {
	var result CXMatrix
	for i := 0; i < 16; i++ {
		var row uint16
		for j := 0; j < 16; j++ {
			if bits.OnesCount16(m.rows[i]&otherT.rows[j])%2 == 1 {
				row |= 1 << uint(j)
			}
		}
		result.rows[i] = row
	}

	return result
}

// Transpose returns the matrix transpose.
func (m CXMatrix) Transpose() CXMatrix {
	var t CXMatrix
	for i := 0; i < 16; i++ {
		var row uint16
		for j := 0; j < 16; j++ {
			if m.rows[j]&(1<<uint(i)) != 0 {
				row |= 1 << uint(j)
			}
		}
		t.rows[i] = row
	}

	return t
}

// Row returns the raw packed row qb, mainly useful for tests and fileio.
func (m CXMatrix) Row(qb int) uint16 {
	return m.rows[qb]
}

// FromRows builds a CXMatrix directly from 16 packed rows, mainly useful
// for tests.
func FromRows(rows [16]uint16) CXMatrix {
	return CXMatrix{rows: rows}
}
