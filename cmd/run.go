package cmd

import (
	"github.com/jjtimmons/strainsim/config"
	"github.com/jjtimmons/strainsim/internal/strainsim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd is for simulating strains and writing the comparisons of them
var runCmd = &cobra.Command{
	Use:                        "run",
	Short:                      "Simulate strains from a random reference and compare them",
	SuggestionsMinimumDistance: 2,
	Long: `Generate a random reference sequence, derive strains from it by point
mutation, and compare the strains. Four files are written to the output directory:

  sequences.fasta      the reference and every strain
  distance_matrix.tsv  Hamming distance between every pair of strains
  kmer_profiles.tsv    k-mer counts of each strain
  tree.txt             strains ordered by their average distance to the others

Settings are read from (highest priority first) flags, STRAINSIM_ environment
variables, and the settings file.`,
	Example: "  strainsim run --length 500 --strains 8 --mutation-rate 0.05 --seed 42 -o results",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.New(viper.GetViper())
		if err != nil {
			return err
		}

		_, err = strainsim.Run(conf)
		return err
	},
}

// set flags
func init() {
	runCmd.Flags().IntP("length", "l", 1000, "length of the reference sequence")
	runCmd.Flags().Float64P("gc", "g", 0.5, "GC content of the reference sequence [0, 1]")
	runCmd.Flags().IntP("strains", "n", 5, "number of strains to derive from the reference")
	runCmd.Flags().Float64P("mutation-rate", "m", 0.01, "per-position probability of a substitution [0, 1]")
	runCmd.Flags().IntP("k", "k", 3, "k-mer width of the profiles")
	runCmd.Flags().Int64P("seed", "s", 0, "seed of the random source (0 seeds from the clock)")
	runCmd.Flags().StringP("out", "o", "results", "output directory")
	runCmd.Flags().String("settings", "", "YAML settings file")
	runCmd.Flags().BoolP("verbose", "v", false, "log the ranked strains")

	for _, name := range []string{"length", "gc", "strains", "mutation-rate", "k", "seed", "out", "settings", "verbose"} {
		viper.BindPFlag(name, runCmd.Flags().Lookup(name))
	}

	RootCmd.AddCommand(runCmd)
}
