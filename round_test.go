// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRoundToDecimal(t *testing.T) {
	tests := []struct {
		v           string
		ceil, floor string
	}{
		{"1.1", "1.100000000000000000", "1.100000000000000000"},
		{"1.0000000000000000001", "1.000000000000000001", "1.000000000000000000"},
		{"-1.0000000000000000001", "-1.000000000000000000", "-1.000000000000000001"},
		{"0.0000000000000000001", "0.000000000000000001", "0.000000000000000000"},
		{"-0.0000000000000000001", "0.000000000000000000", "-0.000000000000000001"},
		{"12", "12.000000000000000000", "12.000000000000000000"},
		{"1E-36", "0.000000000000000001", "0.000000000000000000"},
		{"-1E-36", "0.000000000000000000", "-0.000000000000000001"},
		{"1E-1000", "0.000000000000000001", "0.000000000000000000"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := assert.New(t)
			ceil, err := CeilToDecimal(mustApd(test.v))
			if a.NoError(err) {
				a.Equal(test.ceil, ceil.Text('f'))
			}
			floor, err := FloorToDecimal(mustApd(test.v))
			if a.NoError(err) {
				a.Equal(test.floor, floor.Text('f'))
			}
			a.Equal(DefaultContext, CurrentContext())
		})
	}
}

func TestRoundToPlaces(t *testing.T) {
	tests := []struct {
		v           string
		places      int32
		ceil, floor string
	}{
		{"2.345", 2, "2.35", "2.34"},
		{"-2.345", 2, "-2.34", "-2.35"},
		{"2.345", 0, "3", "2"},
		{"2.3", 3, "2.300", "2.300"},
		{"0.0001", 2, "0.01", "0.00"},
		{"-0.0001", 2, "0.00", "-0.01"},
		{"1.1000000000000000000000000000000000001", 36,
			"1.100000000000000000000000000000000001", "1.100000000000000000000000000000000000"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := assert.New(t)
			ceil, err := CeilToPlaces(mustApd(test.v), test.places)
			if a.NoError(err) {
				a.Equal(test.ceil, ceil.Text('f'))
			}
			floor, err := FloorToPlaces(mustApd(test.v), test.places)
			if a.NoError(err) {
				a.Equal(test.floor, floor.Text('f'))
			}
		})
	}
}

func TestRoundUsesContextPrecision(t *testing.T) {
	a := assert.New(t)
	c := DefaultContext.WithPrecision(5)
	err := WithContext(c, func() error {
		_, err := CeilToDecimal(mustApd("1.5"))
		a.True(errors.Is(err, ErrRange), "unexpected error %v", err)
		res, err := CeilToPlaces(mustApd("1.23456"), 2)
		if a.NoError(err) {
			a.Equal("1.24", res.Text('f'))
		}
		a.Equal(c, CurrentContext())
		return nil
	})
	a.NoError(err)
	a.Equal(apd.RoundHalfEven, CurrentContext().Rounding)
}
