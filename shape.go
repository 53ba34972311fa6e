// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"

	mu "github.com/ociswap/scrypto-math/internal/mathutil"
)

const (
	// DecimalBits is the width of the integer backing a Decimal.
	DecimalBits = 192
	// DecimalScale is the number of decimal places of a Decimal.
	DecimalScale = 18

	// PreciseDecimalBits is the width of the integer backing a PreciseDecimal.
	PreciseDecimalBits = 256
	// PreciseDecimalScale is the number of decimal places of a PreciseDecimal.
	PreciseDecimalScale = 36
)

var (
	decimalShape = newShape("Decimal", DecimalBits, DecimalScale)
	preciseShape = newShape("PreciseDecimal", PreciseDecimalBits, PreciseDecimalScale)
)

// shape is one of the two fixed-point configurations of the runtime.
// A value of a shape is an exact decimal with at most scale fractional digits,
// such that value*10^scale fits a signed integer of bits width.
type shape struct {
	name  string
	bits  int
	scale int32

	// min and max are the smallest and the largest representable values.
	min, max *apd.Decimal
	// limit is 2^bits * 10^-scale, twice the range. Anything at or beyond ±limit
	// is out of range for every rounding mode, so it is rejected before quantization.
	limit *apd.Decimal
	one   *apd.Decimal
}

func newShape(name string, bits int, scale int32) *shape {
	min, max := mu.Bounds(bits)
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return &shape{
		name:  name,
		bits:  bits,
		scale: scale,
		min:   fromBigInt(min, -scale),
		max:   fromBigInt(max, -scale),
		limit: fromBigInt(limit, -scale),
		one:   apd.New(1, 0),
	}
}

// fromBigInt returns coeff * 10^exp.
func fromBigInt(coeff *big.Int, exp int32) *apd.Decimal {
	d := &apd.Decimal{Exponent: exp, Negative: coeff.Sign() < 0}
	d.Coeff.SetMathBigInt(new(big.Int).Abs(coeff))
	return d
}

func (sh *shape) words() int {
	return sh.bits / mu.WordBits
}
