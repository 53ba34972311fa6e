// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrRange is matched by every error caused by a value outside of a shape's bit width.
	ErrRange = errors.New("value out of range")
	// ErrDomain is returned for invalid arguments of an operation,
	// like division by zero or a square root of a negative number.
	ErrDomain = errors.New("domain error")
	// ErrInvalid is returned for malformed or non-finite input.
	ErrInvalid = errors.New("invalid value")
)

// RangeError describes a value which does not fit the signed integer of a shape.
type RangeError struct {
	// Shape is the name of the shape, like Decimal or I192.
	Shape string
	// Value is the offending value.
	Value string
	// TooLarge is set for values above the maximum, and unset for values below the minimum.
	TooLarge bool
}

func (e *RangeError) Error() string {
	reason := "value is too small"
	if e.TooLarge {
		reason = "value is too large"
	}
	return fmt.Sprintf("%s(%q): %s", e.Shape, e.Value, reason)
}

// Is makes RangeError match ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}
