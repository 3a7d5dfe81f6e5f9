package seq

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Reference(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		gc      float64
		allowed string
	}{
		{"empty", 0, 0.5, Alphabet},
		{"balanced", 500, 0.5, Alphabet},
		{"all gc", 200, 1, "GC"},
		{"no gc", 200, 0, "AT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := NewSeededGenerator(1).Reference(tt.length, tt.gc)
			require.NoError(t, err)

			assert.Equal(t, ReferenceID, ref.ID)
			assert.Equal(t, tt.length, ref.Len())
			assert.NoError(t, ref.Validate())
			for _, r := range ref.Seq {
				assert.Contains(t, tt.allowed, string(r))
			}
		})
	}
}

func TestGenerator_ReferenceGCFraction(t *testing.T) {
	ref, err := NewSeededGenerator(7).Reference(20000, 0.7)
	require.NoError(t, err)

	gc := strings.Count(ref.Seq, "G") + strings.Count(ref.Seq, "C")
	assert.InDelta(t, 0.7, float64(gc)/float64(ref.Len()), 0.02)
}

func TestGenerator_ReferenceInvalid(t *testing.T) {
	g := NewSeededGenerator(1)

	tests := []struct {
		name   string
		length int
		gc     float64
	}{
		{"negative length", -1, 0.5},
		{"gc above one", 10, 1.5},
		{"gc below zero", 10, -0.5},
		{"gc nan", 10, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Reference(tt.length, tt.gc)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	a, err := NewSeededGenerator(42).Reference(100, 0.4)
	require.NoError(t, err)
	b, err := NewSeededGenerator(42).Reference(100, 0.4)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerator_Mutate(t *testing.T) {
	g := NewSeededGenerator(3)
	ref := Sequence{ID: ReferenceID, Seq: "ATGC"}

	same, err := g.Mutate(ref, 0)
	require.NoError(t, err)
	assert.Equal(t, ref, same)

	for i := 0; i < 20; i++ {
		redrawn, err := g.Mutate(ref, 1)
		require.NoError(t, err)
		assert.Equal(t, ref.Len(), redrawn.Len())
		assert.Equal(t, ref.ID, redrawn.ID)
		assert.NoError(t, redrawn.Validate())
	}

	assert.Equal(t, "ATGC", ref.Seq, "input is unchanged")
}

func TestGenerator_MutateInvalid(t *testing.T) {
	g := NewSeededGenerator(3)
	ref := Sequence{ID: ReferenceID, Seq: "ATGC"}

	for _, rate := range []float64{-0.01, 1.01, math.NaN()} {
		_, err := g.Mutate(ref, rate)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestGenerator_Strains(t *testing.T) {
	g := NewSeededGenerator(11)
	ref, err := g.Reference(60, 0.5)
	require.NoError(t, err)

	strains, err := g.Strains(ref, 3, 0.1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Strain_1", "Strain_2", "Strain_3"}, strains.IDs())
	for _, s := range strains.Sequences() {
		assert.Equal(t, ref.Len(), s.Len())
		assert.NoError(t, s.Validate())
	}

	none, err := g.Strains(ref, 0, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())

	_, err = g.Strains(ref, -1, 0.1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = g.Strains(ref, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
