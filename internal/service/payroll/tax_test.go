package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeIncomeTax_ZeroAndNegative(t *testing.T) {
	assert.True(t, ComputeIncomeTax(decimal.Zero, DefaultTaxBrackets).IsZero())
	assert.True(t, ComputeIncomeTax(decimal.NewFromInt(-1_000_000), DefaultTaxBrackets).IsZero())
}

// Income landing exactly on a ceiling is taxed entirely in the lower bracket.
func TestComputeIncomeTax_ExactCeiling(t *testing.T) {
	tax := ComputeIncomeTax(decimal.NewFromInt(5_000_000), DefaultTaxBrackets)
	assert.True(t, decimal.NewFromInt(250_000).Equal(tax), "got %s", tax)
}

func TestComputeIncomeTax_TwoBrackets(t *testing.T) {
	// 5,000,000 * 5% + 2,000,000 * 10% = 450,000
	tax := ComputeIncomeTax(decimal.NewFromInt(7_000_000), DefaultTaxBrackets)
	assert.True(t, decimal.NewFromInt(450_000).Equal(tax), "got %s", tax)
}

func TestComputeIncomeTax_TopBracketUnbounded(t *testing.T) {
	// Walks all seven brackets; the 20M above the last ceiling is taxed at 35%.
	tax := ComputeIncomeTax(decimal.NewFromInt(100_000_000), DefaultTaxBrackets)
	assert.True(t, decimal.NewFromInt(25_150_000).Equal(tax), "got %s", tax)
}

func TestComputeIncomeTax_Monotonic(t *testing.T) {
	lower := ComputeIncomeTax(decimal.NewFromInt(7_000_000), DefaultTaxBrackets)
	higher := ComputeIncomeTax(decimal.NewFromInt(8_000_000), DefaultTaxBrackets)
	assert.True(t, higher.GreaterThan(lower))
}

func TestComputeIncomeTax_CustomBrackets(t *testing.T) {
	brackets := []TaxBracket{
		{Ceiling: decimal.NewFromInt(1_000_000), Rate: decimal.RequireFromString("0.10")},
		{Rate: decimal.RequireFromString("0.20")},
	}

	// 1,000,000 * 10% + 500,000 * 20% = 200,000
	tax := ComputeIncomeTax(decimal.NewFromInt(1_500_000), brackets)
	assert.True(t, decimal.NewFromInt(200_000).Equal(tax), "got %s", tax)
}
