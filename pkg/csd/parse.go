package csd

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Number is a validated CSD string split at the separator. Digits are
// stored most significant first, as they appear in the text.
type Number struct {
	Integral   []string  `parser:"@( Plus | Minus | Zero )*"`
	Fractional *Fraction `parser:"@@?"`
}

// Fraction holds the digits after the separator. It is present whenever
// the source string contained a '.', even with no digits following it.
type Fraction struct {
	Digits []string `parser:"Dot @( Plus | Minus | Zero )*"`
}

var csdParser = participle.MustBuild[Number](
	participle.Lexer(csdLexer),
)

// Parse is the strict counterpart to Decode. It accepts exactly the CSD
// grammar digit* ['.' digit*] over the alphabet {+, -, 0}, rejects a
// second separator, and enforces the canonical-form invariant that no
// two adjacent digits are both non-zero (the separator does not break
// adjacency). Errors carry the offending position.
func Parse(s string) (*Number, error) {
	num, err := csdParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(num.Integral) == 0 && num.Fractional == nil {
		return nil, fmt.Errorf("%w: empty CSD string", ErrInvalidInput)
	}
	if err := num.checkAdjacency(); err != nil {
		return nil, err
	}
	return num, nil
}

// checkAdjacency scans the digit sequence with the separator removed.
func (n *Number) checkAdjacency() error {
	prev := "0"
	pos := 0
	check := func(digits []string) error {
		for _, d := range digits {
			pos++
			if d != "0" && prev != "0" {
				return fmt.Errorf("%w: adjacent non-zero digits at position %d", ErrInvalidInput, pos)
			}
			prev = d
		}
		return nil
	}
	if err := check(n.Integral); err != nil {
		return err
	}
	if n.Fractional != nil {
		return check(n.Fractional.Digits)
	}
	return nil
}

// Value returns the numeric value of the parsed number under the
// weighted-sum rule.
func (n *Number) Value() float64 {
	total := 0.0
	for _, d := range n.Integral {
		total = total*2 + digitWeight(d)
	}
	if n.Fractional != nil {
		scale := 0.5
		for _, d := range n.Fractional.Digits {
			total += digitWeight(d) * scale
			scale /= 2
		}
	}
	return total
}

// NonZeros counts the '+' and '-' digits, i.e. the adder/subtractor cost
// of a multiplier built from this number.
func (n *Number) NonZeros() int {
	count := 0
	for _, d := range n.Integral {
		if d != "0" {
			count++
		}
	}
	if n.Fractional != nil {
		for _, d := range n.Fractional.Digits {
			if d != "0" {
				count++
			}
		}
	}
	return count
}

// IntegralLen returns the number of digits before the separator.
func (n *Number) IntegralLen() int { return len(n.Integral) }

// FractionalLen returns the number of digits after the separator, or 0
// if there is no separator.
func (n *Number) FractionalLen() int {
	if n.Fractional == nil {
		return 0
	}
	return len(n.Fractional.Digits)
}

// String reassembles the canonical text form.
func (n *Number) String() string {
	var b strings.Builder
	for _, d := range n.Integral {
		b.WriteString(d)
	}
	if n.Fractional != nil {
		b.WriteByte('.')
		for _, d := range n.Fractional.Digits {
			b.WriteString(d)
		}
	}
	return b.String()
}

func digitWeight(d string) float64 {
	switch d {
	case "+":
		return 1
	case "-":
		return -1
	}
	return 0
}
