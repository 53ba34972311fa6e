// Copyright 2026 Ociswap. All rights reserved.

package mathutil

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad number " + s)
	}
	return v
}

func TestPow10(t *testing.T) {
	a := assert.New(t)
	a.Equal("1", Pow10(-3).String())
	a.Equal("1", Pow10(0).String())
	a.Equal("1000000000000000000", Pow10(18).String())
	a.Equal("1"+fmt.Sprintf("%0100d", 0), Pow10(100).String())
	// the table must not be shared with callers
	Pow10(2).SetInt64(7)
	a.Equal("100", Pow10(2).String())
}

func TestCheckRange(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    string
		bits int
		err  error
	}{
		{"0", 192, nil},
		{"3138550867693340381917894711603833208051177722232017256447", 192, nil},
		{"3138550867693340381917894711603833208051177722232017256448", 192, ErrOverflow},
		{"-3138550867693340381917894711603833208051177722232017256448", 192, nil},
		{"-3138550867693340381917894711603833208051177722232017256449", 192, ErrUnderflow},
		{"127", 8, nil},
		{"128", 8, ErrOverflow},
		{"-128", 8, nil},
		{"-129", 8, ErrUnderflow},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.err, CheckRange(mustBig(test.v), test.bits))
		})
	}
}

func TestScaleToInt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		coeff  int64
		neg    bool
		exp    int32
		places int
		res    string
	}{
		{15, false, -1, 18, "1500000000000000000"},
		{15, true, -1, 18, "-1500000000000000000"},
		{1, false, 2, 0, "100"},
		{19, false, -20, 18, "0"},
		{19, true, -19, 18, "-1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, ScaleToInt(big.NewInt(test.coeff), test.neg, test.exp, test.places).String())
		})
	}
}

func TestSplitJoinWords(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v     string
		bits  int
		words []uint64
	}{
		{"0", 192, []uint64{0, 0, 0}},
		{"1000000000000000000", 192, []uint64{1000000000000000000, 0, 0}},
		{"-1000000000000000000", 192, []uint64{17446744073709551616, 18446744073709551615, 18446744073709551615}},
		{"1000000000000000000000000000000000000", 256, []uint64{12919594847110692864, 54210108624275221, 0, 0}},
		{"-1000000000000000000000000000000000000", 256, []uint64{5527149226598858752, 18392533965085276394, 18446744073709551615, 18446744073709551615}},
		{"3138550867693340381917894711603833208051177722232017256447", 192, []uint64{18446744073709551615, 18446744073709551615, 9223372036854775807}},
		{"-3138550867693340381917894711603833208051177722232017256448", 192, []uint64{0, 0, 9223372036854775808}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := mustBig(test.v)
			words := SplitWords(TwosComplement(v, test.bits), test.bits)
			a.Equal(test.words, words)
			a.Equal(0, v.Cmp(JoinWords(words)))
		})
	}
}
