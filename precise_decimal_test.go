// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	maxPreciseText = "57896044618658097711785492504343953926634.992332820282019728792003956564819967"
	minPreciseText = "-57896044618658097711785492504343953926634.992332820282019728792003956564819968"
)

func TestNewPreciseDecimal(t *testing.T) {
	tests := []struct {
		s   string
		res string
		err error
	}{
		{"1.1", "1.1", nil},
		{"0.000000000000000000000000000000000001", "0.000000000000000000000000000000000001", nil},
		{"0.0000000000000000000000000000000000019", "0.000000000000000000000000000000000001", nil},
		{"-0.0000000000000000000000000000000000001", "-0.000000000000000000000000000000000001", nil},
		{maxPreciseText, maxPreciseText, nil},
		{minPreciseText, minPreciseText, nil},
		{"57896044618658097711785492504343953926634.992332820282019728792003956564819968", "", ErrRange},
		{"-57896044618658097711785492504343953926634.992332820282019728792003956564819969", "", ErrRange},
		{"1.1.1", "", ErrInvalid},
		{"1e-37", "0.000000000000000000000000000000000000", nil},
		{"-1e-72", "-0.000000000000000000000000000000000001", nil},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := assert.New(t)
			x, err := NewPreciseDecimal(test.s)
			if test.err != nil {
				a.True(errors.Is(err, test.err), "unexpected error %v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, x.String())
			}
		})
	}
}

func TestPreciseDecimalLimits(t *testing.T) {
	a := assert.New(t)
	a.Equal(maxPreciseText, MaxPreciseDecimal().String())
	a.Equal(minPreciseText, MinPreciseDecimal().String())
	a.Equal(256, MinPreciseDecimal().Bits())
	a.Equal(36, MinPreciseDecimal().DecimalPlaces())

	words, err := MaxPreciseDecimal().Digits()
	a.NoError(err)
	a.Equal([]uint64{^uint64(0), ^uint64(0), ^uint64(0), 1<<63 - 1}, words)
	words, err = MinPreciseDecimal().Digits()
	a.NoError(err)
	a.Equal([]uint64{0, 0, 0, 1 << 63}, words)

	_, err = MaxPreciseDecimal().Add(MustPreciseDecimal("0.000000000000000000000000000000000001"))
	a.True(errors.Is(err, ErrRange))
}

func TestPreciseDecimalArithmetic(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	third, err := NewPreciseDecimalFromInt64(1).Quo(NewPreciseDecimalFromInt64(3))
	r.NoError(err)
	a.Equal("0.333333333333333333333333333333333333", third.String())

	third, err = NewPreciseDecimalFromInt64(-1).Quo(NewPreciseDecimalFromInt64(3))
	r.NoError(err)
	a.Equal("-0.333333333333333333333333333333333334", third.String())

	sum, err := MustPreciseDecimal("1.000000000000000000000000000000000001").Add(MustPreciseDecimal("1.000000000000000000000000000000000001"))
	r.NoError(err)
	a.Equal("2.000000000000000000000000000000000002", sum.String())

	diff, err := MustPreciseDecimal("1").Sub(MustPreciseDecimal("1.5"))
	r.NoError(err)
	a.Equal("-0.500000000000000000000000000000000000", diff.String())

	prod, err := MustPreciseDecimal("1.000000000000000000000000000000000001").Mul(MustPreciseDecimal("-1.000000000000000000000000000000000001"))
	r.NoError(err)
	a.Equal("-1.000000000000000000000000000000000003", prod.String())

	sqrt, err := NewPreciseDecimalFromInt64(2).Sqrt()
	r.NoError(err)
	a.Equal("1.414213562373095048801688724209698078", sqrt.String())

	pow, err := NewPreciseDecimalFromInt64(2).Pow(MustPreciseDecimal("0.5"))
	r.NoError(err)
	a.True(pow.Equal(sqrt))

	_, err = NewPreciseDecimalFromInt64(1).Quo(PreciseDecimal{})
	a.True(errors.Is(err, ErrDomain))
}

func TestPreciseDecimalIdempotent(t *testing.T) {
	a := assert.New(t)
	values := []PreciseDecimal{
		MaxPreciseDecimal(),
		MinPreciseDecimal(),
		MustPreciseDecimal("1.1"),
		MustPreciseDecimal("-0.000000000000000000000000000000000001"),
		NewPreciseDecimalFromInt64(-7),
		MustPreciseDecimal("-1e-72"),
		MaxDecimal().ToPreciseDecimal(),
	}
	for i, x := range values {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			fromBig, err := NewPreciseDecimalFromBig(x.Big())
			if a.NoError(err) {
				a.True(fromBig.Equal(x), "%s != %s", fromBig, x)
			}
			fromString, err := NewPreciseDecimal(x.String())
			if a.NoError(err) {
				a.True(fromString.Equal(x), "%s != %s", fromString, x)
			}
		})
	}
}

func TestPreciseDecimalPowi(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	third, err := NewPreciseDecimalFromInt64(1).Quo(NewPreciseDecimalFromInt64(3))
	r.NoError(err)
	res, err := third.Powi(4)
	r.NoError(err)
	a.Equal("0.012345679012345679012345679012345678", res.String())

	res, err = MustPreciseDecimal("2.5").Powi(-3)
	r.NoError(err)
	a.Equal("0.064000000000000000000000000000000000", res.String())

	res, err = MustPreciseDecimal("2.5").Powi(0)
	r.NoError(err)
	a.Equal("1", res.String())
}

func TestPreciseDecimalToDecimal(t *testing.T) {
	tests := []struct {
		s           string
		ceil, floor string
		err         error
	}{
		{"1.1", "1.1", "1.1", nil},
		{"1.1000000000000000001", "1.100000000000000001", "1.1", nil},
		{"-1.1000000000000000001", "-1.1", "-1.100000000000000001", nil},
		{"0.000000000000000000000000000000000001", "0.000000000000000001", "0", nil},
		{"-0.000000000000000000000000000000000001", "0", "-0.000000000000000001", nil},
		{"0.00000000000000000001", "0.000000000000000001", "0", nil},
		{"0.0000000000000000001", "0.000000000000000001", "0", nil},
		{maxDecimalText, maxDecimalText, maxDecimalText, nil},
		{maxDecimalText + "1", "", "", ErrRange},
		{minDecimalText + "1", "", "", ErrRange},
		{maxPreciseText, "", "", ErrRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := assert.New(t)
			x := MustPreciseDecimal(test.s)
			ceil, ceilErr := x.CeilToDecimal()
			floor, floorErr := x.FloorToDecimal()
			if test.err != nil {
				a.True(errors.Is(ceilErr, test.err) || errors.Is(floorErr, test.err))
				return
			}
			if a.NoError(ceilErr) && a.NoError(floorErr) {
				a.True(ceil.Equal(MustDecimal(test.ceil)), "ceil: %s", ceil)
				a.True(floor.Equal(MustDecimal(test.floor)), "floor: %s", floor)
			}
		})
	}
}

func TestPreciseDecimalFormat(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	x := MustPreciseDecimal("1")
	a.Equal(`PreciseDecimal("1")`, x.GoString())

	scrypto, err := x.Scrypto()
	r.NoError(err)
	a.Equal("PreciseDecimal(I256::from_digits([12919594847110692864, 54210108624275221, 0, 0]))", scrypto)

	neg, err := x.Neg()
	r.NoError(err)
	words, err := neg.Digits()
	r.NoError(err)
	a.Equal([]uint64{5527149226598858752, 18392533965085276394, 18446744073709551615, 18446744073709551615}, words)

	back, err := PreciseDecimalFromDigits(words)
	r.NoError(err)
	a.True(back.Equal(neg))

	_, err = PreciseDecimalFromDigits(words[:3])
	a.True(errors.Is(err, ErrInvalid))
}
