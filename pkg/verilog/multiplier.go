// Package verilog emits synthesizable Verilog for constant multipliers
// built from CSD digit patterns. Every non-zero digit becomes one
// sign-extended shift of the input feeding a single adder tree, which is
// the whole point of encoding the constant in CSD first.
package verilog

import (
	"fmt"
	"strings"

	"github.com/csdlab/csdigit/pkg/csd"
)

// term is one non-zero digit of the pattern: a power of two and whether
// it is added or subtracted.
type term struct {
	power int
	op    byte
}

// GenerateMultiplier returns a Verilog module multiplying a signed
// n-bit input by the constant encoded in the CSD pattern. m is the
// highest power in the pattern and must equal len(pattern)-1; the
// pattern must be separator-free and drawn from {+, -, 0}. Violations
// are reported as errors wrapping csd.ErrInvalidInput.
func GenerateMultiplier(pattern string, n, m int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: input width %d", csd.ErrInvalidInput, n)
	}
	if len(pattern) != m+1 {
		return "", fmt.Errorf("%w: CSD length %d does not match m=%d (want m+1)",
			csd.ErrInvalidInput, len(pattern), m)
	}

	// Collect the non-zero digits, most significant first. The constant
	// value is recovered alongside for the header comment.
	var terms []term
	value := int64(0)
	for i := 0; i < len(pattern); i++ {
		power := m - i
		switch pattern[i] {
		case '+':
			terms = append(terms, term{power, '+'})
			value = value*2 + 1
		case '-':
			terms = append(terms, term{power, '-'})
			value = value*2 - 1
		case '0':
			value = value * 2
		default:
			return "", fmt.Errorf("%w: CSD pattern may only contain '+', '-' or '0'",
				csd.ErrInvalidInput)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n// CSD Multiplier for pattern: %s (value: %d)\n", pattern, value)
	fmt.Fprintf(&b, "module csd_multiplier (\n")
	fmt.Fprintf(&b, "    input signed [%d:0] x,      // Input value (signed)\n", n-1)
	fmt.Fprintf(&b, "    output signed [%d:0] result // Result (signed)\n);", n+m-1)

	if len(terms) > 0 {
		b.WriteString("\n\n    // Signed shifted versions (Verilog handles sign extension)")
		// One wire per term; powers are strictly decreasing because the
		// pattern is written most significant digit first.
		for _, t := range terms {
			fmt.Fprintf(&b, "\n    wire signed [%d:0] x_shift%d = $signed({ {%d{x[%d]}}, x }) << %d;",
				n+m-1, t.power, m-t.power, n-1, t.power)
		}
	}

	b.WriteString("\n\n    // CSD implementation with signed arithmetic")
	if len(terms) == 0 {
		b.WriteString("\n    assign result = 0;")
	} else {
		var expr strings.Builder
		if terms[0].op == '-' {
			expr.WriteByte('-')
		}
		fmt.Fprintf(&expr, "x_shift%d", terms[0].power)
		for _, t := range terms[1:] {
			fmt.Fprintf(&expr, " %c x_shift%d", t.op, t.power)
		}
		fmt.Fprintf(&b, "\n    assign result = %s;", expr.String())
	}

	b.WriteString("\nendmodule\n")
	return b.String(), nil
}
