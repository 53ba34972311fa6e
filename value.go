// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	mu "github.com/ociswap/scrypto-math/internal/mathutil"
)

var (
	// fixedContext is DefaultContext as of package initialization.
	// Arithmetic does not follow later changes of DefaultContext.
	fixedContext = DefaultContext
	// intermediate is the context of full precision results before truncation.
	intermediate = fixedContext.arith()
	// estimate is the context of order of magnitude estimates.
	estimate = apd.BaseContext.WithPrecision(20)

	// Powers with a result below 10^underflowExp or above 10^overflowExp
	// are resolved without computing them.
	underflowExp = apd.New(-1000, 0)
	overflowExp  = apd.New(100, 0)

	zeroDecimal = apd.New(0, 0)
)

type (
	binaryOp func(d, x, y *apd.Decimal) (apd.Condition, error)
	unaryOp  func(d, x *apd.Decimal) (apd.Condition, error)
)

func roundingContext(rounding apd.Rounder) *apd.Context {
	c := *intermediate
	c.Rounding = rounding
	return &c
}

func text(d *apd.Decimal) string {
	return d.Text('f')
}

// normalized drops the sign of a negative zero, like -0 or the negation of 0.
func normalized(d *apd.Decimal) *apd.Decimal {
	if d.IsZero() {
		d.Negative = false
	}
	return d
}

// parse implements construction from a string.
func (sh *shape) parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%s(%q): %v", sh.name, s, err)
	}
	return sh.accept(d)
}

// accept implements construction from an exact decimal.
// Values with at most scale fractional digits are kept as is,
// finer values are rounded toward negative infinity.
func (sh *shape) accept(d *apd.Decimal) (*apd.Decimal, error) {
	if d.Form != apd.Finite {
		return nil, errors.Wrapf(ErrInvalid, "%s(%q): not a finite number", sh.name, d.String())
	}
	if d.Exponent < -sh.scale {
		return sh.cast(d, apd.RoundFloor)
	}
	if err := sh.checkRange(d); err != nil {
		return nil, err
	}
	return normalized(new(apd.Decimal).Set(d)), nil
}

// cast rounds d to exactly scale fractional digits.
func (sh *shape) cast(d *apd.Decimal, rounding apd.Rounder) (*apd.Decimal, error) {
	if d.Form != apd.Finite {
		return nil, errors.Wrapf(ErrInvalid, "%s(%q): not a finite number", sh.name, d.String())
	}
	var abs apd.Decimal
	if abs.Abs(d).Cmp(sh.limit) >= 0 {
		return nil, sh.rangeError(d.String(), !d.Negative)
	}
	res := new(apd.Decimal)
	if _, err := roundingContext(rounding).Quantize(res, belowResolution(d, sh.scale), -sh.scale); err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%s(%q): %v", sh.name, d.String(), err)
	}
	if err := sh.checkRange(res); err != nil {
		return nil, err
	}
	return normalized(res), nil
}

// belowResolution replaces a nonzero d with less than a single digit at the given number
// of places by ±10^-(places+1), which rounds to the same value in every rounding mode.
// apd quantizes such values to zero without rounding.
func belowResolution(d *apd.Decimal, places int32) *apd.Decimal {
	if d.Form != apd.Finite || d.IsZero() || d.NumDigits()+int64(d.Exponent) >= -int64(places) {
		return d
	}
	tiny := apd.New(1, -places-1)
	tiny.Negative = d.Negative
	return tiny
}

func (sh *shape) checkRange(d *apd.Decimal) error {
	if d.Cmp(sh.max) > 0 {
		return sh.rangeError(d.String(), true)
	}
	if d.Cmp(sh.min) < 0 {
		return sh.rangeError(d.String(), false)
	}
	return nil
}

func (sh *shape) rangeError(value string, tooLarge bool) error {
	return &RangeError{Shape: sh.name, Value: value, TooLarge: tooLarge}
}

// opError converts an apd failure into a range error on overflow and into a domain error otherwise.
func (sh *shape) opError(cond apd.Condition, res *apd.Decimal, err error, expr string) error {
	if cond&apd.Overflow != 0 {
		return sh.rangeError(expr, !res.Negative)
	}
	return errors.Wrapf(ErrDomain, "%s: %s: %v", sh.name, expr, err)
}

// apply2 computes op(x, y) at full precision and truncates the result once.
func (sh *shape) apply2(sym string, op binaryOp, x, y *apd.Decimal) (*apd.Decimal, error) {
	res := new(apd.Decimal)
	cond, err := op(res, x, y)
	if err != nil {
		return nil, sh.opError(cond, res, err, text(x)+" "+sym+" "+text(y))
	}
	return sh.truncate(cond, res)
}

// apply1 computes op(x) at full precision and truncates the result once.
func (sh *shape) apply1(name string, op unaryOp, x *apd.Decimal) (*apd.Decimal, error) {
	res := new(apd.Decimal)
	cond, err := op(res, x)
	if err != nil {
		return nil, sh.opError(cond, res, err, name+"("+text(x)+")")
	}
	return sh.truncate(cond, res)
}

// truncate rounds an operation result toward negative infinity.
// An underflown result may have lost its digits, but not its sign.
func (sh *shape) truncate(cond apd.Condition, res *apd.Decimal) (*apd.Decimal, error) {
	if cond&(apd.Underflow|apd.SystemUnderflow) != 0 && res.Negative {
		res = apd.New(-1, -sh.scale-1)
	}
	return sh.cast(res, apd.RoundFloor)
}

func (sh *shape) add(x, y *apd.Decimal) (*apd.Decimal, error) {
	return sh.apply2("+", intermediate.Add, x, y)
}

func (sh *shape) sub(x, y *apd.Decimal) (*apd.Decimal, error) {
	return sh.apply2("-", intermediate.Sub, x, y)
}

func (sh *shape) mul(x, y *apd.Decimal) (*apd.Decimal, error) {
	return sh.apply2("*", intermediate.Mul, x, y)
}

func (sh *shape) quo(x, y *apd.Decimal) (*apd.Decimal, error) {
	if y.IsZero() {
		return nil, errors.Wrapf(ErrDomain, "%s: %s / %s: division by zero", sh.name, text(x), text(y))
	}
	return sh.apply2("/", intermediate.Quo, x, y)
}

func (sh *shape) pow(x, y *apd.Decimal) (*apd.Decimal, error) {
	if x.IsZero() {
		if y.Negative {
			return nil, errors.Wrapf(ErrDomain, "%s: %s ^ %s: zero to a negative power", sh.name, text(x), text(y))
		}
		return sh.apply2("^", intermediate.Pow, x, y)
	}
	integer, odd := parity(y)
	if x.Negative && !integer {
		return nil, errors.Wrapf(ErrDomain, "%s: %s ^ %s: negative base to a non-integer power", sh.name, text(x), text(y))
	}
	negative := x.Negative && odd
	// log10|x^y| = y*log10|x|
	var abs, mag apd.Decimal
	abs.Abs(x)
	if _, err := estimate.Log10(&mag, &abs); err == nil {
		if _, err := estimate.Mul(&mag, &mag, y); err == nil {
			switch {
			case mag.Cmp(underflowExp) < 0:
				tiny := apd.New(1, -sh.scale-1)
				tiny.Negative = negative
				return sh.cast(tiny, apd.RoundFloor)
			case mag.Cmp(overflowExp) > 0:
				return nil, sh.rangeError(text(x)+" ^ "+text(y), !negative)
			}
		}
	}
	return sh.apply2("^", intermediate.Pow, x, y)
}

// parity reports whether y is an integer and whether that integer is odd.
func parity(y *apd.Decimal) (integer, odd bool) {
	if y.Exponent > 0 {
		return true, false
	}
	coeff := y.Coeff.MathBigInt()
	if y.Exponent == 0 {
		return true, coeff.Bit(0) == 1
	}
	if int64(-y.Exponent) > y.NumDigits() {
		return y.IsZero(), false
	}
	q, r := new(big.Int).QuoRem(coeff, mu.Pow10(int(-y.Exponent)), new(big.Int))
	if r.Sign() != 0 {
		return false, false
	}
	return true, q.Bit(0) == 1
}

func (sh *shape) abs(x *apd.Decimal) (*apd.Decimal, error) {
	return sh.apply1("abs", intermediate.Abs, x)
}

func (sh *shape) neg(x *apd.Decimal) (*apd.Decimal, error) {
	return sh.apply1("neg", intermediate.Neg, x)
}

func (sh *shape) sqrt(c Context, x *apd.Decimal) (*apd.Decimal, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return sh.apply1("sqrt", c.arith().Sqrt, x)
}

// powi computes x^exp by squaring. Unlike the other operations,
// every intermediate product is truncated to the shape, the same way the runtime does it.
func (sh *shape) powi(x *apd.Decimal, exp int64) (*apd.Decimal, error) {
	switch {
	case exp == math.MinInt64:
		return nil, errors.Wrapf(ErrDomain, "%s: %s ^ %d: exponent out of range", sh.name, text(x), exp)
	case exp < 0:
		inv, err := sh.quo(sh.one, x)
		if err != nil {
			return nil, err
		}
		return sh.powi(inv, -exp)
	case exp == 0:
		return new(apd.Decimal).Set(sh.one), nil
	case exp == 1:
		return x, nil
	}
	sq, err := sh.mul(x, x)
	if err != nil {
		return nil, err
	}
	if exp%2 == 1 {
		sub, err := sh.powi(sq, (exp-1)/2)
		if err != nil {
			return nil, err
		}
		return sh.mul(x, sub)
	}
	return sh.powi(sq, exp/2)
}

func (sh *shape) digits(d *apd.Decimal) ([]uint64, error) {
	return toDigits(d, sh.bits, int(sh.scale), sh.name)
}

func (sh *shape) fromDigits(words []uint64) (*apd.Decimal, error) {
	if len(words) != sh.words() {
		return nil, errors.Wrapf(ErrInvalid, "%s: expected %d words, got %d", sh.name, sh.words(), len(words))
	}
	return sh.accept(FromDigits(words, int(sh.scale)))
}

// scrypto returns an expression constructing d in the runtime, like
// Decimal(I192::from_digits([1000000000000000000, 0, 0])).
func (sh *shape) scrypto(d *apd.Decimal) (string, error) {
	words, err := sh.digits(d)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(I%d::from_digits(%s))", sh.name, sh.bits, formatWords(words)), nil
}

func (sh *shape) goString(d *apd.Decimal) string {
	return fmt.Sprintf("%s(%q)", sh.name, text(d))
}

func formatWords(words []uint64) string {
	var builder strings.Builder
	builder.WriteRune('[')
	for i, w := range words {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(strconv.FormatUint(w, 10))
	}
	builder.WriteRune(']')
	return builder.String()
}

func marshalJSON(d *apd.Decimal) ([]byte, error) {
	return []byte(strconv.Quote(text(d))), nil
}

// unmarshalJSON accepts a json string or a number.
func (sh *shape) unmarshalJSON(data []byte) (*apd.Decimal, error) {
	s := string(data)
	if len(s) == 0 {
		return nil, errors.Wrapf(ErrInvalid, "%s: empty json", sh.name)
	}
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalid, "%s(%s): %v", sh.name, s, err)
		}
		s = unquoted
	}
	return sh.parse(s)
}
