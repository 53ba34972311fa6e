// Copyright 2026 Ociswap. All rights reserved.

package scryptomath

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/shopspring/decimal"
)

// DecimalFromShopspring converts v following the rules of NewDecimal.
func DecimalFromShopspring(v decimal.Decimal) (Decimal, error) {
	return NewDecimalFromBig(fromShopspring(v))
}

// PreciseDecimalFromShopspring converts v following the rules of NewPreciseDecimal.
func PreciseDecimalFromShopspring(v decimal.Decimal) (PreciseDecimal, error) {
	return NewPreciseDecimalFromBig(fromShopspring(v))
}

// Shopspring returns x as a shopspring decimal. The conversion is exact.
func (x Decimal) Shopspring() decimal.Decimal {
	return toShopspring(x.dec())
}

// Shopspring returns x as a shopspring decimal. The conversion is exact.
func (x PreciseDecimal) Shopspring() decimal.Decimal {
	return toShopspring(x.dec())
}

func fromShopspring(v decimal.Decimal) *apd.Decimal {
	return fromBigInt(v.Coefficient(), v.Exponent())
}

func toShopspring(d *apd.Decimal) decimal.Decimal {
	coeff := new(big.Int).Set(d.Coeff.MathBigInt())
	if d.Negative {
		coeff.Neg(coeff)
	}
	return decimal.NewFromBigInt(coeff, d.Exponent)
}
