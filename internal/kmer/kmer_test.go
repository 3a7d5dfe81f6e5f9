package kmer

import (
	"testing"

	"github.com/jjtimmons/strainsim/internal/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		s    string
		k    int
		want Profile
	}{
		{
			"overlapping windows",
			"ATGCATGC",
			3,
			Profile{"ATG": 2, "TGC": 2, "GCA": 1, "CAT": 1},
		},
		{
			"k of one",
			"AATG",
			1,
			Profile{"A": 2, "T": 1, "G": 1},
		},
		{
			"k equal to length",
			"ATGC",
			4,
			Profile{"ATGC": 1},
		},
		{
			"k longer than sequence",
			"ATG",
			4,
			Profile{},
		},
		{
			"empty sequence",
			"",
			2,
			Profile{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(tt.s, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCount_invalidK(t *testing.T) {
	for _, k := range []int{0, -3} {
		_, err := Count("ATGC", k)
		assert.ErrorIs(t, err, ErrInvalidK)
	}
}

func TestProfile_Total(t *testing.T) {
	ref, err := seq.NewSeededGenerator(2).Reference(250, 0.5)
	require.NoError(t, err)

	for _, k := range []int{1, 3, 8, 250, 251, 400} {
		p, err := Count(ref.Seq, k)
		require.NoError(t, err)

		want := ref.Len() - k + 1
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, p.Total(), "k=%d", k)
	}
}

func TestVocabulary(t *testing.T) {
	a := Profile{"TGC": 1, "ATG": 2}
	b := Profile{"GCA": 1, "ATG": 1}

	assert.Equal(t, []string{"ATG", "GCA", "TGC"}, Vocabulary(a, b))
	assert.Equal(t, []string{}, Vocabulary())
	assert.Equal(t, []string{}, Vocabulary(Profile{}))
}
