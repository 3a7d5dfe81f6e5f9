// Package report reads and writes the FASTA, TSV and text files of a run.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/jjtimmons/strainsim/internal/distance"
	"github.com/jjtimmons/strainsim/internal/kmer"
	"github.com/jjtimmons/strainsim/internal/seq"
	"github.com/jjtimmons/strainsim/internal/tree"
)

// output file names within a run's output directory
const (
	SequencesFile = "sequences.fasta"
	DistancesFile = "distance_matrix.tsv"
	KmersFile     = "kmer_profiles.tsv"
	TreeFile      = "tree.txt"
)

// WriteFASTA writes the reference followed by each strain. Each sequence
// is on a single line after its header.
func WriteFASTA(w io.Writer, ref seq.Sequence, strains *seq.Collection) error {
	seqs := append([]seq.Sequence{ref}, strains.Sequences()...)

	width := 1
	for _, s := range seqs {
		if s.Len() > width {
			width = s.Len()
		}
	}

	fw := fasta.NewWriter(w, width)
	for _, s := range seqs {
		l := linear.NewSeq(s.ID, alphabet.BytesToLetters([]byte(s.Seq)), alphabet.DNA)
		if _, err := fw.Write(l); err != nil {
			return fmt.Errorf("failed to write %s: %w", s.ID, err)
		}
	}
	return nil
}

// ReadFASTA reads every record in a FASTA file. Sequences are uppercased
// and must only contain A, T, G and C.
func ReadFASTA(r io.Reader) ([]seq.Sequence, error) {
	fr := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))

	var seqs []seq.Sequence
	for {
		s, err := fr.Read()
		if err == io.EOF {
			return seqs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read FASTA: %w", err)
		}

		l, ok := s.(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected sequence type %T", s)
		}

		parsed := seq.Sequence{
			ID:  l.Name(),
			Seq: strings.ToUpper(string(alphabet.LettersToBytes(l.Seq))),
		}
		if err := parsed.Validate(); err != nil {
			return nil, err
		}
		seqs = append(seqs, parsed)
	}
}

// WriteDistances writes the distance matrix as a TSV with a header of
// strain IDs and one row per strain.
func WriteDistances(w io.Writer, m distance.Matrix) error {
	ids := m.IDs()
	tw := tsv(w)

	if err := tw.Write(append([]string{"Strain"}, ids...)); err != nil {
		return err
	}
	for _, a := range ids {
		row := []string{a}
		for _, b := range ids {
			d, _ := m.Get(a, b)
			row = append(row, strconv.Itoa(d))
		}
		if err := tw.Write(row); err != nil {
			return err
		}
	}

	tw.Flush()
	return tw.Error()
}

// WriteKmers writes the profiles as a TSV. The header is every k-mer seen in
// any profile, sorted, and k-mers missing from a profile are written as 0.
func WriteKmers(w io.Writer, ids []string, profiles map[string]kmer.Profile) error {
	var all []kmer.Profile
	for _, id := range ids {
		all = append(all, profiles[id])
	}
	vocab := kmer.Vocabulary(all...)
	tw := tsv(w)

	if err := tw.Write(append([]string{"Strain"}, vocab...)); err != nil {
		return err
	}
	for _, id := range ids {
		row := []string{id}
		for _, k := range vocab {
			row = append(row, strconv.Itoa(profiles[id][k]))
		}
		if err := tw.Write(row); err != nil {
			return err
		}
	}

	tw.Flush()
	return tw.Error()
}

// WriteTree writes the ranked strains as an indented tree.
func WriteTree(w io.Writer, entries []tree.Entry) error {
	_, err := io.WriteString(w, tree.Render(entries))
	return err
}

func tsv(w io.Writer) *csv.Writer {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'
	return tw
}
