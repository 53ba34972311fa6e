// Copyright 2026 Ociswap. All rights reserved.

// Package mathutil implements big integer helpers for scaled fixed-point values
// and their two's-complement word layout.
package mathutil

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	// WordBits is the width of a single word of the native integer layout.
	WordBits = 64

	maxTabled = 80
)

var (
	// ErrOverflow is returned when a scaled integer exceeds 2^(bits-1)-1.
	ErrOverflow = errors.New("value is too large")
	// ErrUnderflow is returned when a scaled integer is less than -2^(bits-1).
	ErrUnderflow = errors.New("value is too small")

	bigOne   = big.NewInt(1)
	bigTen   = big.NewInt(10)
	wordMask = new(big.Int).SetUint64(^uint64(0))

	decimalFactorTable = func() []*big.Int { // up to 1e80
		table := make([]*big.Int, maxTabled+1)
		table[0] = big.NewInt(1)
		for i := 1; i <= maxTabled; i++ {
			table[i] = new(big.Int).Mul(table[i-1], bigTen)
		}
		return table
	}()
)

// Pow10 returns 10^pow. For negative pow it returns 1.
// The result is a fresh value and may be modified by the caller.
func Pow10(pow int) *big.Int {
	if pow <= 0 {
		return big.NewInt(1)
	}
	if pow <= maxTabled {
		return new(big.Int).Set(decimalFactorTable[pow])
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(pow)), nil)
}

// Bounds returns the range [-2^(bits-1), 2^(bits-1)-1] of a signed integer of the given width.
func Bounds(bits int) (min, max *big.Int) {
	limit := new(big.Int).Lsh(bigOne, uint(bits-1))
	min = new(big.Int).Neg(limit)
	max = limit.Sub(limit, bigOne)
	return min, max
}

// CheckRange reports whether v fits a signed two's-complement integer of the given width.
func CheckRange(v *big.Int, bits int) error {
	min, max := Bounds(bits)
	if v.Cmp(max) > 0 {
		return ErrOverflow
	}
	if v.Cmp(min) < 0 {
		return ErrUnderflow
	}
	return nil
}

// ScaleToInt returns trunc(coeff * 10^(exp+places)), where the sign of the result is negative if neg is set.
// The truncation goes toward zero.
func ScaleToInt(coeff *big.Int, neg bool, exp int32, places int) *big.Int {
	result := new(big.Int).Abs(coeff)
	if shift := int(exp) + places; shift >= 0 {
		result.Mul(result, Pow10(shift))
	} else {
		result.Quo(result, Pow10(-shift))
	}
	if neg {
		result.Neg(result)
	}
	return result
}

// TwosComplement returns v as an unsigned integer of the given width.
// For negative values it is v + 2^bits.
func TwosComplement(v *big.Int, bits int) *big.Int {
	result := new(big.Int).Set(v)
	if v.Sign() < 0 {
		result.Add(result, new(big.Int).Lsh(bigOne, uint(bits)))
	}
	return result
}

// SplitWords splits an unsigned integer of the given width into 64-bit words,
// the least significant word first.
func SplitWords(u *big.Int, bits int) []uint64 {
	words := make([]uint64, bits/WordBits)
	chunk := new(big.Int)
	for i := range words {
		chunk.Rsh(u, uint(i*WordBits))
		words[i] = chunk.And(chunk, wordMask).Uint64()
	}
	return words
}

// JoinWords is the inverse of SplitWords followed by TwosComplement:
// it reads the words, least significant first, as a signed integer of 64*len(words) bits.
func JoinWords(words []uint64) *big.Int {
	result := new(big.Int)
	word := new(big.Int)
	for i := len(words) - 1; i >= 0; i-- {
		result.Lsh(result, WordBits)
		result.Or(result, word.SetUint64(words[i]))
	}
	bits := len(words) * WordBits
	if bits > 0 && result.Bit(bits-1) == 1 {
		result.Sub(result, new(big.Int).Lsh(bigOne, uint(bits)))
	}
	return result
}
