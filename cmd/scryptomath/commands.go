// Copyright 2026 Ociswap. All rights reserved.

package main

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	scryptomath "github.com/ociswap/scrypto-math"
	"github.com/ociswap/scrypto-math/errbound"
)

var (
	digitsCommand = cli.Command{
		Name:      "digits",
		Usage:     "Print the runtime expression constructing a value",
		ArgsUsage: "VALUE",
		Flags:     []cli.Flag{ShapeFlag},
		Action:    digits,
	}
	powiCommand = cli.Command{
		Name:      "powi",
		Usage:     "Raise a value to an integer power, truncating every step like the runtime",
		ArgsUsage: "VALUE EXP",
		Flags:     []cli.Flag{ShapeFlag},
		Action:    powi,
	}
	roundCommand = cli.Command{
		Name:      "round",
		Usage:     "Round a value to a number of decimal places",
		ArgsUsage: "VALUE",
		Flags:     []cli.Flag{PlacesFlag, CeilFlag},
		Action:    round,
	}
	boundCommand = cli.Command{
		Name:  "bound",
		Usage: "Print the error bound of a runtime approximation",
		Subcommands: []cli.Command{
			{
				Name:   "ln",
				Usage:  "Bound of ln",
				Action: boundLn,
			},
			{
				Name:      "exp",
				Usage:     "Bound of e^X",
				ArgsUsage: "X",
				Action:    boundExp,
			},
			{
				Name:      "pow",
				Usage:     "Bound of BASE^EXP",
				ArgsUsage: "BASE EXP",
				Flags:     []cli.Flag{StrictFlag},
				Action:    boundPow,
			},
		},
	}
)

func args(ctx *cli.Context, n int) ([]string, error) {
	if ctx.NArg() != n {
		return nil, errors.Errorf("%s: expected %d arguments, got %d", ctx.Command.Name, n, ctx.NArg())
	}
	return ctx.Args()[:n], nil
}

func parseValue(shape, s string) (scryptomath.FixedPoint, error) {
	switch shape {
	case shapeDecimal:
		return scryptomath.NewDecimal(s)
	case shapePrecise:
		return scryptomath.NewPreciseDecimal(s)
	default:
		return nil, errors.Errorf("unknown shape %q", shape)
	}
}

func parseApd(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(scryptomath.ErrInvalid, "%q: %v", s, err)
	}
	return d, nil
}

func digits(ctx *cli.Context) error {
	a, err := args(ctx, 1)
	if err != nil {
		return err
	}
	x, err := parseValue(ctx.String(ShapeFlag.Name), a[0])
	if err != nil {
		return err
	}
	log.Debugf("%#v", x)
	scrypto, err := x.Scrypto()
	if err != nil {
		return err
	}
	printLine(ctx, scrypto)
	return nil
}

func powi(ctx *cli.Context) error {
	a, err := args(ctx, 2)
	if err != nil {
		return err
	}
	x, err := parseValue(ctx.String(ShapeFlag.Name), a[0])
	if err != nil {
		return err
	}
	exp, err := strconv.ParseInt(a[1], 10, 64)
	if err != nil {
		return errors.Wrapf(scryptomath.ErrInvalid, "exponent %q: %v", a[1], err)
	}
	var res scryptomath.FixedPoint
	switch v := x.(type) {
	case scryptomath.Decimal:
		res, err = v.Powi(exp)
	case scryptomath.PreciseDecimal:
		res, err = v.Powi(exp)
	}
	if err != nil {
		return err
	}
	log.Debugf("%#v ^ %d = %#v", x, exp, res)
	scrypto, err := res.Scrypto()
	if err != nil {
		return err
	}
	printLine(ctx, res)
	printLine(ctx, scrypto)
	return nil
}

func round(ctx *cli.Context) error {
	a, err := args(ctx, 1)
	if err != nil {
		return err
	}
	x, err := parseApd(a[0])
	if err != nil {
		return err
	}
	places := int32(ctx.Int(PlacesFlag.Name))
	var res *apd.Decimal
	if ctx.Bool(CeilFlag.Name) {
		res, err = scryptomath.CeilToPlaces(x, places)
	} else {
		res, err = scryptomath.FloorToPlaces(x, places)
	}
	if err != nil {
		return err
	}
	printLine(ctx, res.Text('f'))
	return nil
}

func boundLn(ctx *cli.Context) error {
	if _, err := args(ctx, 0); err != nil {
		return err
	}
	printLine(ctx, errbound.Ln())
	return nil
}

func boundExp(ctx *cli.Context) error {
	a, err := args(ctx, 1)
	if err != nil {
		return err
	}
	x, err := parseApd(a[0])
	if err != nil {
		return err
	}
	bound, err := errbound.Exp(x)
	if err != nil {
		return err
	}
	printLine(ctx, bound)
	return nil
}

func boundPow(ctx *cli.Context) error {
	a, err := args(ctx, 2)
	if err != nil {
		return err
	}
	base, err := parseApd(a[0])
	if err != nil {
		return err
	}
	exp, err := parseApd(a[1])
	if err != nil {
		return err
	}
	pow := errbound.Pow
	if ctx.Bool(StrictFlag.Name) {
		pow = errbound.PowStrict
	}
	bound, err := pow(base, exp)
	if err != nil {
		return err
	}
	log.Debugf("pow bound for %s^%s", base, exp)
	printLine(ctx, bound)
	return nil
}
