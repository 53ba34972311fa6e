// Copyright 2026 Ociswap. All rights reserved.

package main

import (
	"gopkg.in/urfave/cli.v1"

	scryptomath "github.com/ociswap/scrypto-math"
)

const (
	shapeDecimal = "decimal"
	shapePrecise = "precise"
)

var (
	VerbosityFlag = cli.IntFlag{
		Name:   "verbosity",
		Usage:  "Log verbosity, 0 (critical) to 5 (debug)",
		Value:  3,
		EnvVar: "SCRYPTO_MATH_VERBOSITY",
	}
	PrecisionFlag = cli.IntFlag{
		Name:   "precision",
		Usage:  "Number of significant digits used by the rounding commands",
		Value:  scryptomath.DefaultPrecision,
		EnvVar: "SCRYPTO_MATH_PRECISION",
	}
	ShapeFlag = cli.StringFlag{
		Name:  "shape",
		Usage: "Fixed-point shape, decimal (I192, 18 places) or precise (I256, 36 places)",
		Value: shapeDecimal,
	}
	PlacesFlag = cli.IntFlag{
		Name:  "places",
		Usage: "Number of decimal places",
		Value: scryptomath.DecimalScale,
	}
	CeilFlag = cli.BoolFlag{
		Name:  "ceil",
		Usage: "Round toward positive infinity instead of negative infinity",
	}
	StrictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "Fail if the exponent is too large for the error approximation",
	}
)
