// Package distance is for the pairwise Hamming distances between strains.
package distance

import (
	"errors"
	"fmt"

	"github.com/jjtimmons/strainsim/internal/seq"
)

// ErrLengthMismatch is returned by StrictHamming for sequences of different lengths.
var ErrLengthMismatch = errors.New("length mismatch")

// Hamming returns the number of positions at which a and b differ. If their
// lengths differ, only the positions up to the shorter length are compared.
func Hamming(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	d := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// StrictHamming is Hamming but returns an error if the lengths of a and b differ.
func StrictHamming(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	return Hamming(a, b), nil
}

// Pair is an ordered pair of strain IDs.
type Pair struct {
	A, B string
}

// Matrix is the Hamming distance between every pair of strains in a collection.
type Matrix struct {
	ids   []string
	dists map[Pair]int
}

// NewMatrix calculates the distance between every ordered pair of distinct strains.
func NewMatrix(strains *seq.Collection) Matrix {
	ids := strains.IDs()
	m := Matrix{
		ids:   ids,
		dists: make(map[Pair]int, len(ids)*len(ids)),
	}

	for _, a := range ids {
		sa, _ := strains.Get(a)
		for _, b := range ids {
			if a == b {
				continue
			}
			sb, _ := strains.Get(b)
			m.dists[Pair{a, b}] = Hamming(sa.Seq, sb.Seq)
		}
	}
	return m
}

// IDs returns the strain IDs in collection order.
func (m Matrix) IDs() []string {
	return append([]string(nil), m.ids...)
}

// Len is the number of strains.
func (m Matrix) Len() int {
	return len(m.ids)
}

// Get returns the distance between a and b. It's 0 on the diagonal, and
// ok is false if either isn't in the matrix.
func (m Matrix) Get(a, b string) (d int, ok bool) {
	if a == b {
		for _, id := range m.ids {
			if id == a {
				return 0, true
			}
		}
		return 0, false
	}
	d, ok = m.dists[Pair{a, b}]
	return
}
