package csd

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is returned for arguments the engine cannot encode:
// negative place or digit budgets and non-finite values.
var ErrInvalidInput = errors.New("csd: invalid input")

// Encode converts a finite float to its CSD representation with exactly
// places fractional digits.
//
//	Encode(28.5, 2)  = "+00-00.+0"
//	Encode(-0.5, 2)  = "0.-0"
//	Encode(0.0, 2)   = "0.00"
//	Encode(0.0, 0)   = "0."
func Encode(value float64, places int) (string, error) {
	if places < 0 {
		return "", fmt.Errorf("%w: negative places %d", ErrInvalidInput, places)
	}
	if err := checkFinite(value); err != nil {
		return "", err
	}

	var b strings.Builder
	rem := 0
	if abs := math.Abs(value); abs > 0 {
		rem = int(math.Ceil(math.Log2(abs * 1.5)))
	}
	if rem <= 0 {
		// Small values carry no integral digit of their own; they get a
		// single leading zero. Flooring at the computed exponent rather
		// than at |value| < 1 keeps the first fractional digit inside
		// the residual bound, so the adjacency invariant holds there
		// too.
		rem = 0
		b.WriteByte('0')
	}
	p2n := math.Ldexp(1, rem)

	for i := 0; i < rem; i++ {
		p2n, value = encodeDigit(&b, p2n, value)
	}
	b.WriteByte('.')
	for i := 0; i < places; i++ {
		p2n, value = encodeDigit(&b, p2n, value)
	}
	return b.String(), nil
}

// encodeDigit emits one digit at weight p2n/2 and returns the halved
// weight and the corrected residual. The 1.5 scale factor is the CSD
// digit-selection rule: it keeps the residual within ±p2n, so no two
// adjacent digits can both be non-zero.
func encodeDigit(b *strings.Builder, p2n, value float64) (float64, float64) {
	p2n /= 2
	det := 1.5 * value
	switch {
	case det > p2n:
		b.WriteByte('+')
		value -= p2n
	case det < -p2n:
		b.WriteByte('-')
		value += p2n
	default:
		b.WriteByte('0')
	}
	return p2n, value
}

// EncodeInt converts an integer to its CSD representation. The result
// carries no separator.
//
//	EncodeInt(28)  = "+00-00"
//	EncodeInt(-15) = "-000+"
//	EncodeInt(0)   = "0"
func EncodeInt(value int32) string {
	if value == 0 {
		return "0"
	}

	rem := int(math.Ceil(math.Log2(math.Abs(float64(value)) * 1.5)))
	p2n := int64(1) << uint(rem)
	v := int64(value)

	var b strings.Builder
	for p2n > 1 {
		half := p2n >> 1
		// 3·v against ±p2n is the integer-exact form of the 1.5 threshold.
		det := 3 * v
		switch {
		case det > p2n:
			b.WriteByte('+')
			v -= half
		case det < -p2n:
			b.WriteByte('-')
			v += half
		default:
			b.WriteByte('0')
		}
		p2n = half
	}
	return b.String()
}

// Decode converts a CSD string back to its numeric value. Decoding is
// lenient: characters outside {+, -, 0, .} consume their position as if
// they were '0', and only the first separator splits the string. Use
// Parse for validated decoding.
//
//	Decode("+00-00.+") = 28.5
//	Decode("0.-")      = -0.5
func Decode(s string) float64 {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return decodeIntegral(s)
	}
	return decodeIntegral(s[:dot]) + decodeFractional(s[dot+1:])
}

func decodeIntegral(s string) float64 {
	total := 0.0
	for i := 0; i < len(s); i++ {
		total *= 2
		switch s[i] {
		case '+':
			total++
		case '-':
			total--
		}
	}
	return total
}

func decodeFractional(s string) float64 {
	total := 0.0
	scale := 0.5
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			total += scale
		case '-':
			total -= scale
		}
		scale /= 2
	}
	return total
}

func checkFinite(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: non-finite value %v", ErrInvalidInput, value)
	}
	return nil
}
