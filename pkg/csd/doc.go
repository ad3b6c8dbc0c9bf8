// Package csd converts numbers between binary/decimal representation and
// Canonical Signed Digit (CSD) form.
//
// CSD is a positional representation over the digit alphabet {+, -, 0}
// (weights +1, -1, 0) in which no two adjacent digits are both non-zero.
// For a given value it minimizes the number of non-zero digits, and each
// non-zero digit corresponds to one adder or subtractor in a hardware
// multiplier, which is why digital-filter coefficient encoders care.
//
// # Format
//
// A CSD string is a sequence of '+', '-' and '0' characters with at most
// one '.' separating the integral digits from the fractional digits.
// Digit i left of the separator carries weight ±2^i counted from the
// right; fractional digits carry weights ±2^-1, ±2^-2, ... For example:
//
//	"+00-00.+0"  =  32 - 4 + 0.5  =  28.5
//	"0.-"        =  -0.5
//
// # Encoding
//
// Encode and EncodeInt produce the canonical representation. At each
// position the residual value is compared against the current
// power-of-two weight p2n using a 1.5-scaled threshold: a non-zero digit
// is emitted only when |1.5·residual| exceeds p2n. This keeps the
// residual within ±p2n after every step, which is exactly what enforces
// the no-adjacent-non-zero property.
//
// EncodeNNZ and EncodeIntNNZ additionally cap the number of non-zero
// digits, trading precision for hardware cost.
//
// # Decoding
//
// Decode is deliberately lenient: characters outside the alphabet
// consume their position as if they were '0', so it accepts padded or
// annotated digit strings. Parse is the strict alternative; it
// validates the grammar, the single-separator rule and the adjacency
// invariant, and reports positioned errors.
//
// All functions are pure and safe for concurrent use.
package csd
