package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csdlab/csdigit/pkg/coeff"
	"github.com/csdlab/csdigit/pkg/lcsre"
	"github.com/csdlab/csdigit/pkg/verilog"
)

var batchOutDir string

var batchCmd = &cobra.Command{
	Use:   "batch <plan.toml>",
	Short: "Encode a coefficient plan and emit one multiplier per entry",
	Long: `Read a TOML coefficient plan, encode every coefficient to CSD and
write one Verilog multiplier module per coefficient. Fractional digits
are folded into the multiplier pattern; the implied 2^-places scaling
is up to the surrounding datapath.

A plan file looks like:

  [multiplier]
  width = 8

  [[coefficient]]
  name = "b0"
  value = 28.5
  places = 2

  [[coefficient]]
  name = "b1"
  value = 3.14159
  nnz = 3

Examples:
  csd batch coeffs.toml
  csd batch coeffs.toml --out-dir rtl -v`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "d", ".",
		"directory for the generated .v files")
}

func runBatch(cmd *cobra.Command, args []string) error {
	plan, err := coeff.Load(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", batchOutDir, err)
	}

	for _, c := range plan.Coefficients {
		encoded, err := c.Encode()
		if err != nil {
			return fmt.Errorf("coefficient %q: %w", c.Name, err)
		}

		// The separator only marks scaling; the digit pattern is the
		// multiplier.
		pattern := strings.Replace(encoded, ".", "", 1)
		code, err := verilog.GenerateMultiplier(pattern, plan.Multiplier.Width, len(pattern)-1)
		if err != nil {
			return fmt.Errorf("coefficient %q: %w", c.Name, err)
		}

		path := filepath.Join(batchOutDir, c.Name+".v")
		if err := os.WriteFile(path, []byte(code), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("%-12s %-16s -> %s\n", c.Name, encoded, path)
		if verbose {
			if shared := lcsre.LongestRepeatedSubstring(pattern); shared != "" {
				fmt.Printf("  repeated pattern: %s (candidate for sharing)\n", shared)
			}
		}
	}
	return nil
}
