// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"github.com/cockroachdb/apd/v3"
)

// Decimal is a signed fixed-point number with 18 decimal places, backed by a 192-bit integer.
// The zero value is 0. Decimal values are immutable, every operation returns a new value.
type Decimal struct {
	d *apd.Decimal
}

func decimalResult(d *apd.Decimal, err error) (Decimal, error) {
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d: d}, nil
}

// NewDecimal parses s. Digits beyond 18 decimal places are rounded toward negative infinity.
// Returns a *RangeError if the value does not fit 192 bits.
func NewDecimal(s string) (Decimal, error) {
	return decimalResult(decimalShape.parse(s))
}

// MustDecimal is like NewDecimal, but panics on error.
func MustDecimal(s string) Decimal {
	x, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return x
}

// NewDecimalFromBig returns a Decimal for d, following the same rules as NewDecimal.
func NewDecimalFromBig(d *apd.Decimal) (Decimal, error) {
	return decimalResult(decimalShape.accept(d))
}

// NewDecimalFromInt64 returns a Decimal for an integer. Every int64 fits a Decimal.
func NewDecimalFromInt64(n int64) Decimal {
	return Decimal{d: apd.New(n, 0)}
}

// DecimalFromDigits decodes the 3 words of the runtime's I192, least significant first.
func DecimalFromDigits(words []uint64) (Decimal, error) {
	return decimalResult(decimalShape.fromDigits(words))
}

// MaxDecimal returns the largest Decimal, (2^191-1)/10^18.
func MaxDecimal() Decimal {
	return Decimal{d: decimalShape.max}
}

// MinDecimal returns the smallest Decimal, -2^191/10^18.
func MinDecimal() Decimal {
	return Decimal{d: decimalShape.min}
}

func (x Decimal) dec() *apd.Decimal {
	if x.d == nil {
		return zeroDecimal
	}
	return x.d
}

func (x Decimal) fixedShape() *shape {
	return decimalShape
}

// Bits returns 192.
func (x Decimal) Bits() int {
	return DecimalBits
}

// DecimalPlaces returns 18.
func (x Decimal) DecimalPlaces() int {
	return DecimalScale
}

// Big returns a copy of the exact value.
func (x Decimal) Big() *apd.Decimal {
	return new(apd.Decimal).Set(x.dec())
}

// Digits returns the words of the backing I192, least significant first.
func (x Decimal) Digits() ([]uint64, error) {
	return decimalShape.digits(x.dec())
}

// Scrypto returns an expression like Decimal(I192::from_digits([1000000000000000000, 0, 0])).
func (x Decimal) Scrypto() (string, error) {
	return decimalShape.scrypto(x.dec())
}

// String returns the value in plain decimal notation.
func (x Decimal) String() string {
	return text(x.dec())
}

// GoString returns a debug representation like Decimal("1.5").
func (x Decimal) GoString() string {
	return decimalShape.goString(x.dec())
}

// MarshalJSON marshals the value as a json string.
func (x Decimal) MarshalJSON() ([]byte, error) {
	return marshalJSON(x.dec())
}

// UnmarshalJSON accepts a json string or number, following the rules of NewDecimal.
func (x *Decimal) UnmarshalJSON(data []byte) error {
	d, err := decimalShape.unmarshalJSON(data)
	if err == nil {
		x.d = d
	}
	return err
}

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Decimal) Sign() int {
	return x.dec().Sign()
}

// IsZero returns x == 0.
func (x Decimal) IsZero() bool {
	return x.dec().IsZero()
}

// IsNegative returns x < 0.
func (x Decimal) IsNegative() bool {
	return x.Sign() < 0
}

// Cmp compares two values.
// Returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x Decimal) Cmp(y Decimal) int {
	return x.dec().Cmp(y.dec())
}

// Equal returns x == y. Trailing zeros do not matter.
func (x Decimal) Equal(y Decimal) bool {
	return x.Cmp(y) == 0
}

// Add returns x+y.
func (x Decimal) Add(y Decimal) (Decimal, error) {
	return decimalResult(decimalShape.add(x.dec(), y.dec()))
}

// Sub returns x-y.
func (x Decimal) Sub(y Decimal) (Decimal, error) {
	return decimalResult(decimalShape.sub(x.dec(), y.dec()))
}

// Mul returns x*y rounded toward negative infinity.
func (x Decimal) Mul(y Decimal) (Decimal, error) {
	return decimalResult(decimalShape.mul(x.dec(), y.dec()))
}

// Quo returns x/y rounded toward negative infinity.
func (x Decimal) Quo(y Decimal) (Decimal, error) {
	return decimalResult(decimalShape.quo(x.dec(), y.dec()))
}

// Pow returns x^y, computed at full precision and rounded toward negative infinity once.
func (x Decimal) Pow(y Decimal) (Decimal, error) {
	return decimalResult(decimalShape.pow(x.dec(), y.dec()))
}

// Powi returns x^exp computed by squaring, rounding every intermediate product
// toward negative infinity, like the runtime does.
func (x Decimal) Powi(exp int64) (Decimal, error) {
	return decimalResult(decimalShape.powi(x.dec(), exp))
}

// Abs returns |x|.
func (x Decimal) Abs() (Decimal, error) {
	return decimalResult(decimalShape.abs(x.dec()))
}

// Neg returns -x. It fails for MinDecimal.
func (x Decimal) Neg() (Decimal, error) {
	return decimalResult(decimalShape.neg(x.dec()))
}

// Sqrt returns the square root of x, computed at DefaultPrecision digits and rounded toward negative infinity.
func (x Decimal) Sqrt() (Decimal, error) {
	return x.SqrtContext(fixedContext)
}

// SqrtContext is like Sqrt, but computes the square root in c.
func (x Decimal) SqrtContext(c Context) (Decimal, error) {
	return decimalResult(decimalShape.sqrt(c, x.dec()))
}

// ToPreciseDecimal converts x exactly. Every Decimal fits a PreciseDecimal.
func (x Decimal) ToPreciseDecimal() PreciseDecimal {
	return PreciseDecimal{d: x.d}
}
