// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// CeilToDecimal rounds x toward positive infinity to 18 decimal places.
func CeilToDecimal(x *apd.Decimal) (*apd.Decimal, error) {
	return CeilToPlaces(x, DecimalScale)
}

// FloorToDecimal rounds x toward negative infinity to 18 decimal places.
func FloorToDecimal(x *apd.Decimal) (*apd.Decimal, error) {
	return FloorToPlaces(x, DecimalScale)
}

// CeilToPlaces rounds x toward positive infinity to the given number of decimal places.
func CeilToPlaces(x *apd.Decimal, places int32) (*apd.Decimal, error) {
	return roundToPlaces(x, places, apd.RoundCeiling)
}

// FloorToPlaces rounds x toward negative infinity to the given number of decimal places.
func FloorToPlaces(x *apd.Decimal, places int32) (*apd.Decimal, error) {
	return roundToPlaces(x, places, apd.RoundFloor)
}

// roundToPlaces quantizes x with the process-wide precision and the given rounding mode.
// The process-wide rounding mode is restored afterwards.
func roundToPlaces(x *apd.Decimal, places int32, rounding apd.Rounder) (*apd.Decimal, error) {
	res := new(apd.Decimal)
	err := WithContext(CurrentContext().WithRounding(rounding), func() error {
		_, err := CurrentContext().arith().Quantize(res, belowResolution(x, places), -places)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(ErrRange, "round %s to %d places: %v", x.String(), places, err)
	}
	return normalized(res), nil
}
