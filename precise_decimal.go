// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"github.com/cockroachdb/apd/v3"
)

// PreciseDecimal is a signed fixed-point number with 36 decimal places, backed by a 256-bit integer.
// The zero value is 0. Like Decimal, it is immutable.
type PreciseDecimal struct {
	d *apd.Decimal
}

func preciseResult(d *apd.Decimal, err error) (PreciseDecimal, error) {
	if err != nil {
		return PreciseDecimal{}, err
	}
	return PreciseDecimal{d: d}, nil
}

// NewPreciseDecimal parses s. Digits beyond 36 decimal places are rounded toward negative infinity.
// Returns a *RangeError if the value does not fit 256 bits.
func NewPreciseDecimal(s string) (PreciseDecimal, error) {
	return preciseResult(preciseShape.parse(s))
}

// MustPreciseDecimal is like NewPreciseDecimal, but panics on error.
func MustPreciseDecimal(s string) PreciseDecimal {
	x, err := NewPreciseDecimal(s)
	if err != nil {
		panic(err)
	}
	return x
}

// NewPreciseDecimalFromBig returns a PreciseDecimal for d, following the same rules as NewPreciseDecimal.
func NewPreciseDecimalFromBig(d *apd.Decimal) (PreciseDecimal, error) {
	return preciseResult(preciseShape.accept(d))
}

// NewPreciseDecimalFromInt64 returns a PreciseDecimal for an integer.
func NewPreciseDecimalFromInt64(n int64) PreciseDecimal {
	return PreciseDecimal{d: apd.New(n, 0)}
}

// PreciseDecimalFromDigits decodes the 4 words of the runtime's I256, least significant first.
func PreciseDecimalFromDigits(words []uint64) (PreciseDecimal, error) {
	return preciseResult(preciseShape.fromDigits(words))
}

// MaxPreciseDecimal returns (2^255-1)/10^36.
func MaxPreciseDecimal() PreciseDecimal {
	return PreciseDecimal{d: preciseShape.max}
}

// MinPreciseDecimal returns -2^255/10^36.
func MinPreciseDecimal() PreciseDecimal {
	return PreciseDecimal{d: preciseShape.min}
}

func (x PreciseDecimal) dec() *apd.Decimal {
	if x.d == nil {
		return zeroDecimal
	}
	return x.d
}

func (x PreciseDecimal) fixedShape() *shape {
	return preciseShape
}

// Bits returns 256.
func (x PreciseDecimal) Bits() int {
	return PreciseDecimalBits
}

// DecimalPlaces returns 36.
func (x PreciseDecimal) DecimalPlaces() int {
	return PreciseDecimalScale
}

// Big returns a copy of the exact value.
func (x PreciseDecimal) Big() *apd.Decimal {
	return new(apd.Decimal).Set(x.dec())
}

// Digits returns the words of the backing I256, least significant first.
func (x PreciseDecimal) Digits() ([]uint64, error) {
	return preciseShape.digits(x.dec())
}

// Scrypto returns an expression like PreciseDecimal(I256::from_digits([...])).
func (x PreciseDecimal) Scrypto() (string, error) {
	return preciseShape.scrypto(x.dec())
}

// String returns the value in plain decimal notation.
func (x PreciseDecimal) String() string {
	return text(x.dec())
}

// GoString returns a debug representation like PreciseDecimal("1.5").
func (x PreciseDecimal) GoString() string {
	return preciseShape.goString(x.dec())
}

// MarshalJSON marshals the value as a json string.
func (x PreciseDecimal) MarshalJSON() ([]byte, error) {
	return marshalJSON(x.dec())
}

// UnmarshalJSON accepts a json string or number, following the rules of NewPreciseDecimal.
func (x *PreciseDecimal) UnmarshalJSON(data []byte) error {
	d, err := preciseShape.unmarshalJSON(data)
	if err == nil {
		x.d = d
	}
	return err
}

// Sign returns the sign of x.
func (x PreciseDecimal) Sign() int {
	return x.dec().Sign()
}

// IsZero returns x == 0.
func (x PreciseDecimal) IsZero() bool {
	return x.dec().IsZero()
}

// IsNegative returns x < 0.
func (x PreciseDecimal) IsNegative() bool {
	return x.Sign() < 0
}

// Cmp compares two values, see Decimal.Cmp.
func (x PreciseDecimal) Cmp(y PreciseDecimal) int {
	return x.dec().Cmp(y.dec())
}

// Equal returns x == y.
func (x PreciseDecimal) Equal(y PreciseDecimal) bool {
	return x.Cmp(y) == 0
}

// Add returns x+y.
func (x PreciseDecimal) Add(y PreciseDecimal) (PreciseDecimal, error) {
	return preciseResult(preciseShape.add(x.dec(), y.dec()))
}

// Sub returns x-y.
func (x PreciseDecimal) Sub(y PreciseDecimal) (PreciseDecimal, error) {
	return preciseResult(preciseShape.sub(x.dec(), y.dec()))
}

// Mul returns x*y rounded toward negative infinity.
func (x PreciseDecimal) Mul(y PreciseDecimal) (PreciseDecimal, error) {
	return preciseResult(preciseShape.mul(x.dec(), y.dec()))
}

// Quo returns x/y rounded toward negative infinity.
func (x PreciseDecimal) Quo(y PreciseDecimal) (PreciseDecimal, error) {
	return preciseResult(preciseShape.quo(x.dec(), y.dec()))
}

// Pow returns x^y, computed at full precision and rounded toward negative infinity once.
func (x PreciseDecimal) Pow(y PreciseDecimal) (PreciseDecimal, error) {
	return preciseResult(preciseShape.pow(x.dec(), y.dec()))
}

// Powi returns x^exp, see Decimal.Powi.
func (x PreciseDecimal) Powi(exp int64) (PreciseDecimal, error) {
	return preciseResult(preciseShape.powi(x.dec(), exp))
}

// Abs returns |x|.
func (x PreciseDecimal) Abs() (PreciseDecimal, error) {
	return preciseResult(preciseShape.abs(x.dec()))
}

// Neg returns -x. It fails for MinPreciseDecimal.
func (x PreciseDecimal) Neg() (PreciseDecimal, error) {
	return preciseResult(preciseShape.neg(x.dec()))
}

// Sqrt returns the square root of x rounded toward negative infinity.
func (x PreciseDecimal) Sqrt() (PreciseDecimal, error) {
	return x.SqrtContext(fixedContext)
}

// SqrtContext is like Sqrt, but computes the square root in c.
func (x PreciseDecimal) SqrtContext(c Context) (PreciseDecimal, error) {
	return preciseResult(preciseShape.sqrt(c, x.dec()))
}

// CeilToDecimal rounds x toward positive infinity to 18 decimal places.
// Returns a *RangeError if the result does not fit a Decimal.
func (x PreciseDecimal) CeilToDecimal() (Decimal, error) {
	return decimalResult(decimalShape.cast(x.dec(), apd.RoundCeiling))
}

// FloorToDecimal rounds x toward negative infinity to 18 decimal places.
// Returns a *RangeError if the result does not fit a Decimal.
func (x PreciseDecimal) FloorToDecimal() (Decimal, error) {
	return decimalResult(decimalShape.cast(x.dec(), apd.RoundFloor))
}
