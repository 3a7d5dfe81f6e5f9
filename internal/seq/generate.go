package seq

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ReferenceID is the ID of a generated reference sequence.
const ReferenceID = "Reference"

// Generator makes random reference sequences and mutates them. Its
// random source is explicit so runs can be reproduced from a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a Generator with its own source seeded by seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Reference returns a random sequence of length symbols. Each symbol is G or C
// with probability gcContent and A or T otherwise.
func (g *Generator) Reference(length int, gcContent float64) (Sequence, error) {
	if length < 0 {
		return Sequence{}, fmt.Errorf("%w: length %d is negative", ErrInvalidParameter, length)
	}
	if !probability(gcContent) {
		return Sequence{}, fmt.Errorf("%w: gc content %v is not in [0, 1]", ErrInvalidParameter, gcContent)
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if g.rng.Float64() < gcContent {
			b.WriteByte("GC"[g.rng.Intn(2)])
		} else {
			b.WriteByte("AT"[g.rng.Intn(2)])
		}
	}

	return Sequence{ID: ReferenceID, Seq: b.String()}, nil
}

// Mutate returns a copy of s where each position is, with probability rate,
// replaced by a symbol drawn from the whole Alphabet. The drawn symbol may be
// the one it replaces, so not every substitution changes the sequence.
func (g *Generator) Mutate(s Sequence, rate float64) (Sequence, error) {
	if !probability(rate) {
		return Sequence{}, fmt.Errorf("%w: mutation rate %v is not in [0, 1]", ErrInvalidParameter, rate)
	}

	mutated := []byte(s.Seq)
	for i := range mutated {
		if g.rng.Float64() < rate {
			mutated[i] = Alphabet[g.rng.Intn(len(Alphabet))]
		}
	}

	return Sequence{ID: s.ID, Seq: string(mutated)}, nil
}

// Strains derives n strains, Strain_1 to Strain_n, from the reference. Each
// is its own mutation of the reference.
func (g *Generator) Strains(ref Sequence, n int, rate float64) (*Collection, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: strain count %d is negative", ErrInvalidParameter, n)
	}

	strains := NewCollection(ref.Len())
	for i := 1; i <= n; i++ {
		mutated, err := g.Mutate(ref, rate)
		if err != nil {
			return nil, err
		}
		mutated.ID = fmt.Sprintf("Strain_%d", i)

		if err := strains.Add(mutated); err != nil {
			return nil, err
		}
	}
	return strains, nil
}

func probability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
