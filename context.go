// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"sync/atomic"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// DefaultPrecision is the number of significant digits of intermediate results.
const DefaultPrecision = 500

// Context holds the precision and the rounding mode of high-precision calculations.
type Context struct {
	// Precision is the number of significant digits.
	Precision uint32
	// Rounding is the rounding mode. apd.RoundHalfUp is used if empty.
	Rounding apd.Rounder
}

var (
	// DefaultContext is the initial process-wide context.
	DefaultContext = Context{Precision: DefaultPrecision, Rounding: apd.RoundHalfEven}

	current atomic.Pointer[Context]
)

func init() {
	c := DefaultContext
	current.Store(&c)
}

// WithPrecision returns a copy of c with the given precision.
func (c Context) WithPrecision(p uint32) Context {
	c.Precision = p
	return c
}

// WithRounding returns a copy of c with the given rounding mode.
func (c Context) WithRounding(r apd.Rounder) Context {
	c.Rounding = r
	return c
}

func (c Context) validate() error {
	if c.Precision == 0 {
		return errors.Wrap(ErrInvalid, "context precision must be positive")
	}
	return nil
}

// arith returns an apd context for c. Results below the smallest exponent
// do not fail, they are far beyond the resolution of both shapes.
func (c Context) arith() *apd.Context {
	ac := apd.BaseContext.WithPrecision(c.Precision)
	ac.Rounding = c.Rounding
	ac.Traps &^= apd.Underflow | apd.SystemUnderflow | apd.Subnormal
	return ac
}

// CurrentContext returns the process-wide context.
func CurrentContext() Context {
	return *current.Load()
}

// SetContext replaces the process-wide context and returns the previous one.
func SetContext(c Context) (prev Context, err error) {
	if err := c.validate(); err != nil {
		return CurrentContext(), err
	}
	return *current.Swap(&c), nil
}

// WithContext runs fn with c as the process-wide context.
// The previous context is restored when fn returns or panics.
// Overrides are not isolated between goroutines: concurrent callers must serialize them.
func WithContext(c Context, fn func() error) error {
	prev, err := SetContext(c)
	if err != nil {
		return err
	}
	defer current.Store(&prev)
	return fn()
}
