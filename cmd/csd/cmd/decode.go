package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csdlab/csdigit/pkg/csd"
)

var decodeStrict bool

var decodeCmd = &cobra.Command{
	Use:   "decode <csd-string>",
	Short: "Convert a CSD string back to a decimal number",
	Long: `Convert a Canonical Signed Digit string back to its numeric value.

The default mode is lenient: characters outside {+, -, 0, .} are
treated as '0'. With --strict the input must
match the CSD grammar exactly and satisfy the no-adjacent-non-zero
invariant.

Examples:
  csd decode "+00-00.+"       # 28.5
  csd decode --strict "0.-0"  # -0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", false,
		"reject input that is not well-formed canonical CSD")
}

func runDecode(cmd *cobra.Command, args []string) error {
	if decodeStrict {
		num, err := csd.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(formatFloat(num.Value()))
		if verbose {
			fmt.Printf("digits: %d integral, %d fractional, %d non-zero\n",
				num.IntegralLen(), num.FractionalLen(), num.NonZeros())
		}
		return nil
	}

	fmt.Println(formatFloat(csd.Decode(args[0])))
	return nil
}
