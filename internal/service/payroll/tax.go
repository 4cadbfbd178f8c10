package payroll

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one step of the progressive schedule. Brackets are walked in
// ascending ceiling order; the last bracket is unbounded and its ceiling is
// ignored.
type TaxBracket struct {
	Ceiling decimal.Decimal
	Rate    decimal.Decimal
}

// DefaultTaxBrackets is the monthly progressive personal income tax schedule
// (VND, employee side).
var DefaultTaxBrackets = []TaxBracket{
	{Ceiling: decimal.NewFromInt(5_000_000), Rate: decimal.RequireFromString("0.05")},
	{Ceiling: decimal.NewFromInt(10_000_000), Rate: decimal.RequireFromString("0.10")},
	{Ceiling: decimal.NewFromInt(18_000_000), Rate: decimal.RequireFromString("0.15")},
	{Ceiling: decimal.NewFromInt(32_000_000), Rate: decimal.RequireFromString("0.20")},
	{Ceiling: decimal.NewFromInt(52_000_000), Rate: decimal.RequireFromString("0.25")},
	{Ceiling: decimal.NewFromInt(80_000_000), Rate: decimal.RequireFromString("0.30")},
	{Rate: decimal.RequireFromString("0.35")},
}

// ComputeIncomeTax walks the progressive brackets over taxableIncome and
// returns the tax owed, rounded to the nearest currency unit. Income landing
// exactly on a bracket ceiling is taxed entirely within the lower bracket.
// Callers gate the zero-income and tax-opt-out cases and must clamp negative
// taxable income to zero before calling.
func ComputeIncomeTax(taxableIncome decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := taxableIncome
	previousCeiling := decimal.Zero

	for i, b := range brackets {
		amount := remaining
		if i < len(brackets)-1 {
			width := b.Ceiling.Sub(previousCeiling)
			if width.LessThan(amount) {
				amount = width
			}
			previousCeiling = b.Ceiling
		}

		tax = tax.Add(amount.Mul(b.Rate))
		remaining = remaining.Sub(amount)
		if !remaining.IsPositive() {
			break
		}
	}

	return tax.Round(0)
}
