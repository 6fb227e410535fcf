// Package finance holds the interest math. Amounts are carried as decimals
// while computing and rounded to whole units at the edge, the same rounding
// the dashboards display.
package finance

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// EMI computes the equated monthly installment for a loan: principal P at an
// annual percentage rate over a tenure in months, rounded to the nearest
// whole unit. Computed once at application time and stored on the loan.
func EMI(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	p := decimal.NewFromFloat(principal)
	n := decimal.NewFromInt(int64(months))
	if annualRate == 0 {
		result, _ := p.Div(n).Round(0).Float64()
		return result
	}
	// monthly rate = annual / 12 / 100
	r := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(1200))
	growth := one.Add(r).Pow(n)
	emi := p.Mul(r).Mul(growth).Div(growth.Sub(one))
	result, _ := emi.Round(0).Float64()
	return result
}

// MaturityValue computes the simple-interest maturity value of an investment,
// rounded to the nearest whole unit. Recomputed on every read; never stored.
func MaturityValue(amount, annualRate float64, months int) float64 {
	a := decimal.NewFromFloat(amount)
	rate := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(100))
	years := decimal.NewFromInt(int64(months)).Div(decimal.NewFromInt(12))
	value := a.Mul(one.Add(rate.Mul(years)))
	result, _ := value.Round(0).Float64()
	return result
}
