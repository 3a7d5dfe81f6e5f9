// Package strainsim runs the strain simulation: it generates a reference,
// derives strains from it, compares them, and writes the results.
package strainsim

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jjtimmons/strainsim/config"
	"github.com/jjtimmons/strainsim/internal/distance"
	"github.com/jjtimmons/strainsim/internal/kmer"
	"github.com/jjtimmons/strainsim/internal/report"
	"github.com/jjtimmons/strainsim/internal/seq"
	"github.com/jjtimmons/strainsim/internal/tree"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Result is everything computed in a run.
type Result struct {
	// Seed the random source was seeded with
	Seed int64

	// Reference all the strains were derived from
	Reference seq.Sequence

	// Strains derived from the reference
	Strains *seq.Collection

	// Distances between every pair of strains
	Distances distance.Matrix

	// Profiles of each strain's k-mers, by strain ID
	Profiles map[string]kmer.Profile

	// Ranked strains, by increasing average distance
	Ranked []tree.Entry
}

// Run generates the reference and strains, compares them, and writes
// the results to the output directory.
func Run(conf *config.Config) (*Result, error) {
	start := time.Now()

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := Simulate(conf, seq.NewSeededGenerator(seed))
	if err != nil {
		return nil, err
	}
	res.Seed = seed

	if err := Write(conf.Out, res); err != nil {
		return nil, err
	}

	stderr.Printf("wrote results to %s in %.2fs (seed %d)\n", conf.Out, time.Since(start).Seconds(), seed)
	return res, nil
}

// Simulate runs every step of the analysis with the generator's random source.
func Simulate(conf *config.Config, g *seq.Generator) (*Result, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	stderr.Printf("generating a %d bp reference\n", conf.Length)
	ref, err := g.Reference(conf.Length, conf.GCContent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reference: %w", err)
	}

	stderr.Printf("deriving %d strains\n", conf.Strains)
	strains, err := g.Strains(ref, conf.Strains, conf.MutationRate)
	if err != nil {
		return nil, fmt.Errorf("failed to derive strains: %w", err)
	}

	stderr.Println("calculating distances")
	m := distance.NewMatrix(strains)

	stderr.Printf("counting %d-mers\n", conf.K)
	profiles := make(map[string]kmer.Profile, strains.Len())
	for _, s := range strains.Sequences() {
		if profiles[s.ID], err = kmer.Count(s.Seq, conf.K); err != nil {
			return nil, fmt.Errorf("failed to count k-mers in %s: %w", s.ID, err)
		}
	}

	stderr.Println("ranking strains")
	ranked := tree.Rank(m)
	if conf.Verbose {
		stderr.Print(tree.Render(ranked))
	}

	return &Result{
		Reference: ref,
		Strains:   strains,
		Distances: m,
		Profiles:  profiles,
		Ranked:    ranked,
	}, nil
}

// Write saves the sequences, distances, k-mer profiles, and tree to dir.
func Write(dir string, res *Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to make output directory: %w", err)
	}

	writers := []struct {
		name  string
		write func(w io.Writer) error
	}{
		{report.SequencesFile, func(w io.Writer) error {
			return report.WriteFASTA(w, res.Reference, res.Strains)
		}},
		{report.DistancesFile, func(w io.Writer) error {
			return report.WriteDistances(w, res.Distances)
		}},
		{report.KmersFile, func(w io.Writer) error {
			return report.WriteKmers(w, res.Strains.IDs(), res.Profiles)
		}},
		{report.TreeFile, func(w io.Writer) error {
			return report.WriteTree(w, res.Ranked)
		}},
	}

	for _, wr := range writers {
		if err := writeFile(filepath.Join(dir, wr.name), wr.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(filename string, write func(io.Writer) error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", filename, cerr)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
