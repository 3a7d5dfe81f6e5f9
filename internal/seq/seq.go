// Package seq is for DNA sequences, the strains derived from them, and
// their random generation.
package seq

import (
	"errors"
	"fmt"
)

// Alphabet is the set of symbols a Sequence is made of.
const Alphabet = "ATGC"

var (
	// ErrInvalidParameter is returned for probabilities, lengths or counts out of range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidSymbol is returned for a sequence with a symbol outside of Alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrDuplicateID is returned when adding a strain whose ID is already in a Collection.
	ErrDuplicateID = errors.New("duplicate strain id")

	// ErrLengthMismatch is returned when adding a strain of the wrong length to a Collection.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Sequence is a named DNA sequence. Sequences are values, mutating one
// returns a new Sequence.
type Sequence struct {
	// ID is the sequence's label. In >Strain_1 FASTA its "Strain_1"
	ID string

	// Seq is the sequence's symbols
	Seq string
}

// Len returns the number of symbols in the sequence.
func (s Sequence) Len() int {
	return len(s.Seq)
}

// Validate returns an error if any symbol isn't in Alphabet.
func (s Sequence) Validate() error {
	for i := 0; i < len(s.Seq); i++ {
		switch s.Seq[i] {
		case 'A', 'T', 'G', 'C':
		default:
			return fmt.Errorf("%w: %q at %d in %s", ErrInvalidSymbol, s.Seq[i], i, s.ID)
		}
	}
	return nil
}

// Collection is a set of strains with unique IDs and a shared length. The
// order strains are added in is kept.
type Collection struct {
	length int
	ids    []string
	seqs   map[string]Sequence
}

// NewCollection returns an empty Collection whose strains are all length long.
func NewCollection(length int) *Collection {
	return &Collection{
		length: length,
		seqs:   make(map[string]Sequence),
	}
}

// Add appends a strain to the collection.
func (c *Collection) Add(s Sequence) error {
	if _, contained := c.seqs[s.ID]; contained {
		return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
	}
	if s.Len() != c.length {
		return fmt.Errorf("%w: %s is %d bp, expected %d", ErrLengthMismatch, s.ID, s.Len(), c.length)
	}

	c.ids = append(c.ids, s.ID)
	c.seqs[s.ID] = s
	return nil
}

// Get returns the strain with the id.
func (c *Collection) Get(id string) (Sequence, bool) {
	s, ok := c.seqs[id]
	return s, ok
}

// IDs returns the strain IDs in the order they were added.
func (c *Collection) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Sequences returns the strains in the order they were added.
func (c *Collection) Sequences() []Sequence {
	seqs := make([]Sequence, 0, len(c.ids))
	for _, id := range c.ids {
		seqs = append(seqs, c.seqs[id])
	}
	return seqs
}

// Len is the number of strains.
func (c *Collection) Len() int {
	return len(c.ids)
}

// SeqLen is the length shared by every strain.
func (c *Collection) SeqLen() int {
	return c.length
}
