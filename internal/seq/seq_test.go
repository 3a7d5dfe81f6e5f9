package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_Validate(t *testing.T) {
	tests := []struct {
		name    string
		seq     Sequence
		wantErr bool
	}{
		{"empty", Sequence{ID: "a"}, false},
		{"all bases", Sequence{ID: "a", Seq: "ATGCATGC"}, false},
		{"lowercase", Sequence{ID: "a", Seq: "ATgC"}, true},
		{"ambiguous base", Sequence{ID: "a", Seq: "ATNC"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seq.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSymbol)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCollection_Add(t *testing.T) {
	c := NewCollection(4)

	require.NoError(t, c.Add(Sequence{ID: "b", Seq: "ATGC"}))
	require.NoError(t, c.Add(Sequence{ID: "a", Seq: "ATGG"}))

	assert.ErrorIs(t, c.Add(Sequence{ID: "a", Seq: "TTTT"}), ErrDuplicateID)
	assert.ErrorIs(t, c.Add(Sequence{ID: "c", Seq: "ATG"}), ErrLengthMismatch)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 4, c.SeqLen())
	assert.Equal(t, []string{"b", "a"}, c.IDs())
	assert.Equal(t, []Sequence{{ID: "b", Seq: "ATGC"}, {ID: "a", Seq: "ATGG"}}, c.Sequences())

	s, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "ATGG", s.Seq)

	_, ok = c.Get("c")
	assert.False(t, ok)
}

func TestCollection_IDsCopy(t *testing.T) {
	c := NewCollection(1)
	require.NoError(t, c.Add(Sequence{ID: "a", Seq: "A"}))

	ids := c.IDs()
	ids[0] = "changed"

	assert.Equal(t, []string{"a"}, c.IDs())
}
