package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/csdlab/csdigit/pkg/csd"
)

var (
	encodePlaces int
	encodeNNZ    int
	encodeAsInt  bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Convert a number to CSD form",
	Long: `Convert a decimal number to its Canonical Signed Digit representation.

By default the fractional part is encoded to a fixed number of places.
With --nnz the total count of non-zero digits is capped instead, which
trades precision for a cheaper multiplier. With --int the value is
treated as an integer and encoded without a separator.

Negative values need a "--" so they are not read as flags.

Examples:
  csd encode 28.5 --places 2      # "+00-00.+0"
  csd encode --int 28             # "+00-00"
  csd encode --int -- -15         # "-000+"
  csd encode --int 37 --nnz 2     # "+00+00"`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().IntVarP(&encodePlaces, "places", "p", 4,
		"number of fractional digits")
	encodeCmd.Flags().IntVarP(&encodeNNZ, "nnz", "n", 0,
		"maximum number of non-zero digits (overrides --places)")
	encodeCmd.Flags().BoolVar(&encodeAsInt, "int", false,
		"encode as an integer (no separator)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	useNNZ := cmd.Flags().Changed("nnz")

	var result string
	if encodeAsInt {
		value, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", args[0], err)
		}
		if useNNZ {
			result, err = csd.EncodeIntNNZ(int32(value), encodeNNZ)
			if err != nil {
				return err
			}
		} else {
			result = csd.EncodeInt(int32(value))
		}
	} else {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", args[0], err)
		}
		if useNNZ {
			result, err = csd.EncodeNNZ(value, encodeNNZ)
		} else {
			result, err = csd.Encode(value, encodePlaces)
		}
		if err != nil {
			return err
		}
	}

	fmt.Println(result)
	if verbose {
		fmt.Printf("decoded back: %s\n", formatFloat(csd.Decode(result)))
		fmt.Printf("non-zero digits: %d\n", countNonZero(result))
	}
	return nil
}

func countNonZero(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			count++
		}
	}
	return count
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
