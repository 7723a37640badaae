package operator

import "math/bits"

// QubitSet is a bitmask over the 16 qubit indices 0..15. It replaces the
// a hash-set of qubit indices with a packed
// representation consistent with the rest of this package's bit algebra.
type QubitSet uint16

// Has reports whether qb is a member of the set.
func (s QubitSet) Has(qb int) bool {
	return s&(1<<uint(qb)) != 0
}

// With returns the set with qb added.
func (s QubitSet) With(qb int) QubitSet {
	return s | (1 << uint(qb))
}

// Without returns the set with qb removed.
func (s QubitSet) Without(qb int) QubitSet {
	return s &^ (1 << uint(qb))
}

// Union returns the union of s and other.
func (s QubitSet) Union(other QubitSet) QubitSet {
	return s | other
}

// Intersect returns the intersection of s and other.
func (s QubitSet) Intersect(other QubitSet) QubitSet {
	return s & other
}

// Len returns the number of qubits in the set.
func (s QubitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Empty reports whether the set has no members.
func (s QubitSet) Empty() bool {
	return s == 0
}

// Qubits returns the set's members in ascending order.
func (s QubitSet) Qubits() []int {
	qubits := make([]int, 0, s.Len())
	for qb := 0; qb < 16; qb++ {
		if s.Has(qb) {
			qubits = append(qubits, qb)
		}
	}

	return qubits
}

// QubitSetOf builds a QubitSet from the given qubit indices.
func QubitSetOf(qubits ...int) QubitSet {
	var s QubitSet
	for _, qb := range qubits {
		s = s.With(qb)
	}

	return s
}
