// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	mu "github.com/ociswap/scrypto-math/internal/mathutil"
)

// ToDigits returns the words of the runtime's native integer holding v: v*10^decimalPlaces,
// truncated toward zero, in two's-complement of the given width, split into 64-bit words
// with the least significant word first.
// It fails with a *RangeError if the scaled value does not fit bits.
func ToDigits(v *apd.Decimal, bits, decimalPlaces int) ([]uint64, error) {
	return toDigits(v, bits, decimalPlaces, fmt.Sprintf("I%d", bits))
}

// StringToDigits is ToDigits for a decimal string.
func StringToDigits(s string, bits, decimalPlaces int) ([]uint64, error) {
	v, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "I%d(%q): %v", bits, s, err)
	}
	return ToDigits(v, bits, decimalPlaces)
}

// CheckRange returns a *RangeError if v*10^decimalPlaces does not fit a signed integer of bits width.
func CheckRange(v *apd.Decimal, bits, decimalPlaces int) error {
	_, err := ToDigits(v, bits, decimalPlaces)
	return err
}

// FromDigits decodes the words of a signed two's-complement integer of 64*len(words) bits,
// least significant word first, and divides it by 10^decimalPlaces.
// The result is exact.
func FromDigits(words []uint64, decimalPlaces int) *apd.Decimal {
	return fromBigInt(mu.JoinWords(words), -int32(decimalPlaces))
}

func toDigits(v *apd.Decimal, bits, decimalPlaces int, name string) ([]uint64, error) {
	if bits <= 0 || bits%mu.WordBits != 0 {
		return nil, errors.Wrapf(ErrInvalid, "%s: bit width %d is not a positive multiple of %d", name, bits, mu.WordBits)
	}
	if decimalPlaces < 0 {
		return nil, errors.Wrapf(ErrInvalid, "%s: negative number of decimal places %d", name, decimalPlaces)
	}
	if v.Form != apd.Finite {
		return nil, errors.Wrapf(ErrInvalid, "%s(%q): not a finite number", name, v.String())
	}
	scaled, err := scaleToInt(v, bits, decimalPlaces)
	if err == nil {
		err = mu.CheckRange(scaled, bits)
	}
	if err != nil {
		return nil, &RangeError{Shape: name, Value: v.String(), TooLarge: err == mu.ErrOverflow}
	}
	return mu.SplitWords(mu.TwosComplement(scaled, bits), bits), nil
}

// scaleToInt returns trunc(v*10^decimalPlaces). Values whose magnitude
// obviously exceeds bits are rejected without scaling.
func scaleToInt(v *apd.Decimal, bits, decimalPlaces int) (*big.Int, error) {
	if v.IsZero() {
		return new(big.Int), nil
	}
	// v*10^decimalPlaces lies in [10^magnitude, 10^(magnitude+1)).
	magnitude := v.NumDigits() - 1 + int64(v.Exponent) + int64(decimalPlaces)
	switch {
	case magnitude < 0:
		return new(big.Int), nil
	case magnitude > int64(bits)*31/100: // 10^magnitude > 2^bits
		if v.Negative {
			return nil, mu.ErrUnderflow
		}
		return nil, mu.ErrOverflow
	}
	return mu.ScaleToInt(v.Coeff.MathBigInt(), v.Negative, v.Exponent, decimalPlaces), nil
}
