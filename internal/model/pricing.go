package model

import "github.com/shopspring/decimal"

// Pricing formulas for cotações. All monetary math runs on decimal.Decimal;
// values are rounded to 2 places only at presentation time.

// fatorLanceIdeal is the fixed 40% markup policy over the supplier unit price.
var fatorLanceIdeal = decimal.NewFromFloat(1.4)

var cem = decimal.NewFromInt(100)

// TotalCotacao returns quantidade × valorUnitario.
func TotalCotacao(quantidade int, valorUnitario decimal.Decimal) decimal.Decimal {
	return valorUnitario.Mul(decimal.NewFromInt(int64(quantidade)))
}

// LanceIdeal returns the suggested competitive bid: valorUnitario × 1.4.
func LanceIdeal(valorUnitario decimal.Decimal) decimal.Decimal {
	return valorUnitario.Mul(fatorLanceIdeal)
}

// MargemLucro returns ((lanceMinimo − valorUnitario) / valorUnitario) × 100.
// The margin is only defined when both inputs are positive; ok=false means the
// caller must keep the previously stored margin instead of overwriting it.
func MargemLucro(valorUnitario, lanceMinimo decimal.Decimal) (decimal.Decimal, bool) {
	if !valorUnitario.IsPositive() || !lanceMinimo.IsPositive() {
		return decimal.Zero, false
	}
	return lanceMinimo.Sub(valorUnitario).Div(valorUnitario).Mul(cem), true
}

// TotalReferencia returns quantidade × valorReferenciaUnitario.
func TotalReferencia(quantidade int, valorReferenciaUnitario decimal.Decimal) decimal.Decimal {
	return valorReferenciaUnitario.Mul(decimal.NewFromInt(int64(quantidade)))
}
