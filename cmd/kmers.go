package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jjtimmons/strainsim/internal/kmer"
	"github.com/jjtimmons/strainsim/internal/report"
	"github.com/jjtimmons/strainsim/internal/seq"
	"github.com/spf13/cobra"
)

// kmersCmd is for counting the k-mers of sequences
var kmersCmd = &cobra.Command{
	Use:   "kmers [seq]",
	Short: "Print the k-mer profile of sequences",
	Long: `Count the k-mers in a sequence passed as an argument, or in every sequence of
a FASTA file passed with --in, and print the profiles as a TSV.`,
	Example: "  strainsim kmers ATGCATGC -k 3\n  strainsim kmers --in results/sequences.fasta -k 4",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := cmd.Flags().GetInt("k")
		if err != nil {
			return err
		}
		in, err := cmd.Flags().GetString("in")
		if err != nil {
			return err
		}

		seqs, err := kmersInput(in, args)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(seqs))
		profiles := make(map[string]kmer.Profile, len(seqs))
		for _, s := range seqs {
			if _, contained := profiles[s.ID]; contained {
				return fmt.Errorf("%w: %s", seq.ErrDuplicateID, s.ID)
			}
			if profiles[s.ID], err = kmer.Count(s.Seq, k); err != nil {
				return err
			}
			ids = append(ids, s.ID)
		}

		return report.WriteKmers(cmd.OutOrStdout(), ids, profiles)
	},
}

// kmersInput returns the sequences from the --in FASTA or the argument
func kmersInput(in string, args []string) ([]seq.Sequence, error) {
	switch {
	case in != "" && len(args) > 0:
		return nil, fmt.Errorf("pass either a sequence or --in, not both")
	case in != "":
		f, err := os.Open(in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return report.ReadFASTA(f)
	case len(args) == 1:
		s := seq.Sequence{ID: "seq", Seq: strings.ToUpper(args[0])}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return []seq.Sequence{s}, nil
	}
	return nil, fmt.Errorf("no sequence: pass one as an argument or a FASTA file with --in")
}

// set flags
func init() {
	kmersCmd.Flags().IntP("k", "k", 3, "k-mer width")
	kmersCmd.Flags().StringP("in", "i", "", "input FASTA file")

	RootCmd.AddCommand(kmersCmd)
}
