package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csdlab/csdigit/pkg/lcsre"
)

var repeatCmd = &cobra.Command{
	Use:   "repeat <string>",
	Short: "Find the longest repeated non-overlapping substring",
	Long: `Find the longest substring that occurs at least twice in the input
without the occurrences overlapping. Applied to a CSD string this
exposes digit patterns whose partial products a multiplier can share.

Examples:
  csd repeat "+-00+-00+-00+-0"   # "+-00+-0"`,
	Args: cobra.ExactArgs(1),
	RunE: runRepeat,
}

func init() {
	rootCmd.AddCommand(repeatCmd)
}

func runRepeat(cmd *cobra.Command, args []string) error {
	result := lcsre.LongestRepeatedSubstring(args[0])
	if result == "" {
		if verbose {
			fmt.Println("no repeated substring")
		}
		return nil
	}
	fmt.Println(result)
	if verbose {
		fmt.Printf("length: %d\n", len(result))
	}
	return nil
}
