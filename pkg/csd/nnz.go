package csd

import (
	"fmt"
	"math"
	"strings"
)

// Residuals below this magnitude are treated as fully encoded; the
// budgeted float encoder otherwise has no fixed place count to stop at.
const negligible = 1e-100

// EncodeNNZ converts a finite float to a CSD representation using at
// most nnz non-zero digits. Once the budget is spent the remaining
// residual is dropped uncorrected, so the result is the minimal-cost
// approximation rather than an exact encoding. Unlike Encode, digits are
// only emitted while there is something left to encode, so the result
// carries no trailing zero padding and may omit the separator entirely.
//
//	EncodeNNZ(28.5, 4) = "+00-00.+"
//	EncodeNNZ(-0.5, 4) = "0.-"
//	EncodeNNZ(0.0, 4)  = "0"
func EncodeNNZ(value float64, nnz int) (string, error) {
	if nnz < 0 {
		return "", fmt.Errorf("%w: negative non-zero budget %d", ErrInvalidInput, nnz)
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
		rem = 0
		b.WriteByte('0')
	}
	p2n := math.Ldexp(1, rem)
	budget := nnz

	for rem > 0 || (budget > 0 && math.Abs(value) > negligible) {
		if rem == 0 {
			b.WriteByte('.')
		}
		p2n /= 2
		rem--
		det := 1.5 * value
		switch {
		case budget > 0 && det > p2n:
			b.WriteByte('+')
			value -= p2n
			budget--
		case budget > 0 && det < -p2n:
			b.WriteByte('-')
			value += p2n
			budget--
		default:
			// Out of budget: the residual is simply not corrected further.
			b.WriteByte('0')
		}
	}
	return b.String(), nil
}

// EncodeIntNNZ converts an integer to a CSD representation using at most
// nnz non-zero digits. The positional loop always runs down to weight 1,
// so unlike EncodeNNZ the result keeps its trailing zeros.
//
//	EncodeIntNNZ(37, 2)  = "+00+00"
//	EncodeIntNNZ(158, 2) = "+0+00000"
func EncodeIntNNZ(value int32, nnz int) (string, error) {
	if nnz < 0 {
		return "", fmt.Errorf("%w: negative non-zero budget %d", ErrInvalidInput, nnz)
	}
	if value == 0 {
		return "0", nil
	}

	rem := int(math.Ceil(math.Log2(math.Abs(float64(value)) * 1.5)))
	p2n := int64(1) << uint(rem)
	v := int64(value)
	budget := nnz

	var b strings.Builder
	for p2n > 1 {
		half := p2n >> 1
		det := 3 * v
		switch {
		case budget > 0 && det > p2n:
			b.WriteByte('+')
			v -= half
			budget--
		case budget > 0 && det < -p2n:
			b.WriteByte('-')
			v += half
			budget--
		default:
			b.WriteByte('0')
		}
		p2n = half
	}
	return b.String(), nil
}
