package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "csd",
	Short: "Canonical Signed Digit conversion and multiplier generation",
	Long: `csd converts numbers to and from Canonical Signed Digit (CSD) form
and generates constant-multiplier hardware from the resulting digit
patterns. CSD minimizes the non-zero digit count of a constant, and
every non-zero digit is one adder in the multiplier.

Examples:
  csd encode 28.5 --places 2          # "+00-00.+0"
  csd encode 28.5 --nnz 4             # budgeted encoding
  csd encode --int -- -15             # integer encoding, no separator
  csd decode "+00-00.+"               # back to 28.5
  csd repeat "+-00+-00+-00+-0"        # longest repeated digit pattern
  csd verilog "+00-00+0" --width 8    # emit a multiplier module
  csd batch coeffs.toml --out-dir rtl # one module per coefficient`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
