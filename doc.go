// Copyright 2026 Ociswap. All rights reserved.

// Package scryptomath emulates the fixed-point arithmetic of the Scrypto runtime.
//
// Decimal has 18 decimal places and is backed by a signed 192-bit integer,
// PreciseDecimal has 36 decimal places and is backed by a signed 256-bit integer.
// Every operation is computed exactly, or at 500 significant digits for
// division, powers and square roots, and then rounded toward negative infinity
// to the number of decimal places of the shape, the same way the runtime truncates.
// Results which do not fit the backing integer fail with a *RangeError.
//
// The values can be encoded as the words of the runtime's native integers (see ToDigits),
// or as Scrypto expressions constructing them.
//
// Package errbound provides error bounds of the runtime's ln, exp and pow
// approximations, to compare their results against the exact values computed here.
package scryptomath
