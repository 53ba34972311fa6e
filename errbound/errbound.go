// Copyright 2026 Ociswap. All rights reserved.

// Package errbound computes upper bounds of the absolute error of the runtime's
// ln, exp and pow approximations, so that their results can be compared
// against exact values with a tolerance.
//
// All calculations use a fixed precision of 40 significant digits,
// independent of scryptomath's process-wide context.
package errbound

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	scryptomath "github.com/ociswap/scrypto-math"
)

const (
	// Precision is the number of significant digits of the returned bounds.
	Precision = 40

	// reducedExpBits is the binary exponent of the error of exp on the reduced argument, 2^-59.
	reducedExpBits = -59
	// maxScale limits the range reduction step. 2^±100000 is far beyond both shapes.
	maxScale = 100000
)

var (
	// ErrDomain is scryptomath.ErrDomain, returned for a non-positive base or an out of range argument.
	ErrDomain = scryptomath.ErrDomain
	// ErrApproximation is returned by PowStrict when the exponent is too large
	// for the first-order error propagation of Pow to hold.
	ErrApproximation = errors.New("exponent too large for the error approximation")

	ctx = newContext(Precision)

	// ln2 and lnBound are computed with guard digits and rounded to Precision.
	ln2     = mustConst(func(c *apd.Context, d *apd.Decimal) (apd.Condition, error) { return c.Ln(d, apd.New(2, 0)) })
	lnBound = mustConst(func(c *apd.Context, d *apd.Decimal) (apd.Condition, error) {
		// 2^-58.45 == e^(-58.45*ln2)
		if _, err := c.Ln(d, apd.New(2, 0)); err != nil {
			return 0, err
		}
		if _, err := c.Mul(d, d, apd.New(-5845, -2)); err != nil {
			return 0, err
		}
		return c.Exp(d, d)
	})

	half               = apd.New(5, -1)
	approximationLimit = apd.New(1, -3)
)

func newContext(precision uint32) *apd.Context {
	c := apd.BaseContext.WithPrecision(precision)
	c.Rounding = apd.RoundHalfEven
	return c
}

func mustConst(fn func(c *apd.Context, d *apd.Decimal) (apd.Condition, error)) *apd.Decimal {
	d := new(apd.Decimal)
	if _, err := fn(newContext(Precision+10), d); err != nil {
		panic(err)
	}
	if _, err := ctx.Round(d, d); err != nil {
		panic(err)
	}
	return d
}

// Ln returns the bound of the runtime's natural logarithm, 2^-58.45.
// It does not depend on the argument.
func Ln() *apd.Decimal {
	return new(apd.Decimal).Set(lnBound)
}

// Exp returns the bound of the runtime's e^x.
// The runtime reduces the argument as e^x = 2^k * e^r with k = round(x/ln2),
// halves rounded away from zero, and the error of e^r is 2^-59, so the bound is 2^(k-59).
func Exp(x *apd.Decimal) (*apd.Decimal, error) {
	k, err := reductionStep(x)
	if err != nil {
		return nil, err
	}
	return pow2(k + reducedExpBits), nil
}

// Pow returns the bound of the runtime's base^exponent, computed as e^(exponent*ln(base)).
// The errors of exp and ln are composed by first-order propagation:
//
//	Exp(y) + e^y * Ln() * |exponent|, where y = exponent*ln(base).
//
// The result is only meaningful while Ln()*|exponent| is much less than 1, see PowStrict.
func Pow(base, exponent *apd.Decimal) (*apd.Decimal, error) {
	if base.Sign() <= 0 {
		return nil, errors.Wrapf(ErrDomain, "pow bound: ln(%s): base must be positive", base.String())
	}
	var y, ey, absExp, term apd.Decimal
	if _, err := ctx.Ln(&y, base); err != nil {
		return nil, errors.Wrapf(ErrDomain, "pow bound: ln(%s): %v", base.String(), err)
	}
	if _, err := ctx.Mul(&y, &y, exponent); err != nil {
		return nil, errors.Wrapf(ErrDomain, "pow bound: %s*ln(%s): %v", exponent.String(), base.String(), err)
	}
	expBound, err := Exp(&y)
	if err != nil {
		return nil, err
	}
	if _, err := ctx.Exp(&ey, &y); err != nil {
		return nil, errors.Wrapf(ErrDomain, "pow bound: e^%s: %v", y.String(), err)
	}
	absExp.Abs(exponent)
	if _, err := ctx.Mul(&term, &ey, lnBound); err != nil {
		return nil, errors.Wrapf(ErrDomain, "pow bound: %v", err)
	}
	if _, err := ctx.Mul(&term, &term, &absExp); err != nil {
		return nil, errors.Wrapf(ErrDomain, "pow bound: %v", err)
	}
	if _, err := ctx.Add(expBound, expBound, &term); err != nil {
		return nil, errors.Wrapf(ErrDomain, "pow bound: %v", err)
	}
	return expBound, nil
}

// PowStrict is like Pow, but returns ErrApproximation if Ln()*|exponent| exceeds 10^-3.
func PowStrict(base, exponent *apd.Decimal) (*apd.Decimal, error) {
	var absExp, lnErr apd.Decimal
	absExp.Abs(exponent)
	if _, err := ctx.Mul(&lnErr, lnBound, &absExp); err != nil {
		return nil, errors.Wrapf(ErrDomain, "pow bound: %v", err)
	}
	if lnErr.Cmp(approximationLimit) > 0 {
		return nil, errors.Wrapf(ErrApproximation, "ln error %s for exponent %s", lnErr.String(), exponent.String())
	}
	return Pow(base, exponent)
}

// reductionStep returns trunc(x/ln2 ± 0.5), where the sign of the half is the sign of x.
func reductionStep(x *apd.Decimal) (int64, error) {
	if x.Form != apd.Finite {
		return 0, errors.Wrapf(ErrDomain, "exp bound: %s is not finite", x.String())
	}
	var q, k apd.Decimal
	if _, err := ctx.Quo(&q, x, ln2); err != nil {
		return 0, errors.Wrapf(ErrDomain, "exp bound: %s/ln2: %v", x.String(), err)
	}
	var err error
	if x.Negative {
		_, err = ctx.Sub(&q, &q, half)
	} else {
		_, err = ctx.Add(&q, &q, half)
	}
	if err != nil {
		return 0, errors.Wrapf(ErrDomain, "exp bound: %v", err)
	}
	trunc := *ctx
	trunc.Rounding = apd.RoundDown
	if _, err := trunc.RoundToIntegralValue(&k, &q); err != nil {
		return 0, errors.Wrapf(ErrDomain, "exp bound: %v", err)
	}
	n, err := k.Int64()
	if err != nil || n > maxScale || n < -maxScale {
		return 0, errors.Wrapf(ErrDomain, "exp bound: %s: reduction step %s out of range", x.String(), k.String())
	}
	return n, nil
}

// pow2 returns 2^n rounded to Precision. 2^-n is written as 5^n * 10^-n.
func pow2(n int64) *apd.Decimal {
	d := new(apd.Decimal)
	if n >= 0 {
		d.Coeff.SetMathBigInt(new(big.Int).Lsh(big.NewInt(1), uint(n)))
	} else {
		d.Coeff.SetMathBigInt(new(big.Int).Exp(big.NewInt(5), big.NewInt(-n), nil))
		d.Exponent = int32(n)
	}
	// Rounding a finite value to a precision cannot fail.
	_, _ = ctx.Round(d, d)
	return d
}
