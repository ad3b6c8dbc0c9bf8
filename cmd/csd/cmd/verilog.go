package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csdlab/csdigit/pkg/verilog"
)

var (
	verilogWidth int
	verilogOut   string
)

var verilogCmd = &cobra.Command{
	Use:   "verilog <csd-pattern>",
	Short: "Generate a Verilog constant multiplier from a CSD pattern",
	Long: `Generate a signed Verilog multiplier module for the constant encoded
in a separator-free CSD pattern. Every non-zero digit becomes one
sign-extended shift of the input feeding the adder tree.

The highest power is taken from the pattern length (m = len-1).

Examples:
  csd verilog "+00-00+0" --width 8
  csd verilog "+0-" --width 12 --out mult.v`,
	Args: cobra.ExactArgs(1),
	RunE: runVerilog,
}

func init() {
	rootCmd.AddCommand(verilogCmd)

	verilogCmd.Flags().IntVarP(&verilogWidth, "width", "w", 8,
		"input bit width")
	verilogCmd.Flags().StringVarP(&verilogOut, "out", "o", "",
		"write the module to a file instead of stdout")
}

func runVerilog(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	code, err := verilog.GenerateMultiplier(pattern, verilogWidth, len(pattern)-1)
	if err != nil {
		return err
	}

	if verilogOut == "" {
		fmt.Print(code)
		return nil
	}
	if err := os.WriteFile(verilogOut, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", verilogOut, err)
	}
	if verbose {
		fmt.Printf("wrote %s\n", verilogOut)
	}
	return nil
}
