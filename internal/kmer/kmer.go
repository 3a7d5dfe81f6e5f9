// Package kmer counts the fixed width substrings of sequences.
package kmer

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidK is returned for a k-mer width less than 1.
var ErrInvalidK = errors.New("invalid k")

// Profile maps each k-mer in a sequence to the number of times it occurs.
type Profile map[string]int

// Count slides a window of width k across s, one position at a time, and
// counts each k-mer in it. The profile is empty if k is longer than s.
func Count(s string, k int) (Profile, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}

	p := make(Profile)
	for i := 0; i+k <= len(s); i++ {
		p[s[i:i+k]]++
	}
	return p, nil
}

// Total is the number of windows counted. For a sequence of length n it's
// max(0, n-k+1).
func (p Profile) Total() int {
	total := 0
	for _, count := range p {
		total += count
	}
	return total
}

// Vocabulary returns every k-mer seen in any of the profiles, sorted.
func Vocabulary(profiles ...Profile) []string {
	seen := make(map[string]bool)
	for _, p := range profiles {
		for kmer := range p {
			seen[kmer] = true
		}
	}

	vocab := make([]string, 0, len(seen))
	for kmer := range seen {
		vocab = append(vocab, kmer)
	}
	sort.Strings(vocab)
	return vocab
}
