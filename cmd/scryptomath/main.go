// Copyright 2026 Ociswap. All rights reserved.

// Command scryptomath computes ground-truth values of the runtime's fixed-point arithmetic
// and the error bounds of its ln, exp and pow approximations.
//
// Negative arguments must follow "--", like: scryptomath powi -- -1.5 3.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	logging "github.com/whyrusleeping/go-logging"
	"gopkg.in/urfave/cli.v1"

	scryptomath "github.com/ociswap/scrypto-math"
)

var log = logging.MustGetLogger("scryptomath")

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newApp(out, logOut io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "scryptomath"
	app.Usage = "runtime Decimal and PreciseDecimal ground truth"
	app.Writer = out
	app.ErrWriter = logOut
	app.Flags = []cli.Flag{
		VerbosityFlag,
		PrecisionFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		setupLogging(logOut, ctx.Int(VerbosityFlag.Name))
		precision := ctx.Int(PrecisionFlag.Name)
		if precision <= 0 {
			return errors.Errorf("invalid precision %d", precision)
		}
		if _, err := scryptomath.SetContext(scryptomath.CurrentContext().WithPrecision(uint32(precision))); err != nil {
			return err
		}
		log.Debugf("context precision %d", precision)
		return nil
	}
	app.Commands = []cli.Command{
		digitsCommand,
		powiCommand,
		roundCommand,
		boundCommand,
	}
	return app
}

func setupLogging(w io.Writer, verbosity int) {
	switch {
	case verbosity < int(logging.CRITICAL):
		verbosity = int(logging.CRITICAL)
	case verbosity > int(logging.DEBUG):
		verbosity = int(logging.DEBUG)
	}
	backend := logging.NewLogBackend(w, "", 0)
	formatter := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.Level(verbosity), "")
	logging.SetBackend(leveled)
}

func printLine(ctx *cli.Context, a ...interface{}) {
	fmt.Fprintln(ctx.App.Writer, a...)
}
