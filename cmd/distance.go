package cmd

import (
	"fmt"

	"github.com/jjtimmons/strainsim/internal/distance"
	"github.com/spf13/cobra"
)

// distanceCmd is for the Hamming distance between two sequences
var distanceCmd = &cobra.Command{
	Use:   "distance [seq] [seq]",
	Short: "Print the Hamming distance between two sequences",
	Long: `Print the number of positions at which two sequences differ. If their lengths
differ, only the positions up to the shorter length are compared unless --strict
is set, in which case it's an error.`,
	Example: "  strainsim distance ATGC ATGG",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return err
		}

		d := distance.Hamming(args[0], args[1])
		if strict {
			if d, err = distance.StrictHamming(args[0], args[1]); err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

// set flags
func init() {
	distanceCmd.Flags().Bool("strict", false, "fail if the sequences differ in length")

	RootCmd.AddCommand(distanceCmd)
}
