// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// FixedPoint is implemented by Decimal and PreciseDecimal, the two shapes of the runtime.
// It cannot be implemented outside of the package.
type FixedPoint interface {
	fmt.Stringer
	fmt.GoStringer
	// Bits returns the width of the backing integer.
	Bits() int
	// DecimalPlaces returns the number of fractional digits.
	DecimalPlaces() int
	// Big returns a copy of the exact value.
	Big() *apd.Decimal
	// Digits returns the words of the backing integer, least significant first.
	Digits() ([]uint64, error)
	// Scrypto returns an expression constructing the value in the runtime.
	Scrypto() (string, error)
	Sign() int
	IsZero() bool

	fixedShape() *shape
}

var (
	_ FixedPoint = Decimal{}
	_ FixedPoint = PreciseDecimal{}
)
