// Package tree orders strains by their average distance to the others and
// draws the order as an indented tree. It's a flat sort rendered to look
// like a tree, not a hierarchical clustering.
package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jjtimmons/strainsim/internal/distance"
	"gonum.org/v1/gonum/stat"
)

// RootLabel is the first line of a rendered tree.
const RootLabel = "Root"

// Entry is a strain and its average distance to every other strain.
type Entry struct {
	ID    string
	Score float64
}

// AverageDistance is the mean distance from id to every other strain in m.
// A strain with nothing to compare against has an average of 0.
func AverageDistance(id string, m distance.Matrix) float64 {
	var dists []float64
	for _, other := range m.IDs() {
		if other == id {
			continue
		}
		if d, ok := m.Get(id, other); ok {
			dists = append(dists, float64(d))
		}
	}

	if len(dists) == 0 {
		return 0
	}
	return stat.Mean(dists, nil)
}

// Rank returns every strain in m sorted by increasing average distance. Ties
// keep the strains' order in m.
func Rank(m distance.Matrix) []Entry {
	entries := make([]Entry, 0, m.Len())
	for _, id := range m.IDs() {
		entries = append(entries, Entry{ID: id, Score: AverageDistance(id, m)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})
	return entries
}

// Render draws the entries under RootLabel, each indented one level deeper
// than the last.
func Render(entries []Entry) string {
	var b strings.Builder
	b.WriteString(RootLabel + "\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%s|-- %s (distance: %.2f)\n", strings.Repeat("  ", i+1), e.ID, e.Score)
	}
	return b.String()
}
