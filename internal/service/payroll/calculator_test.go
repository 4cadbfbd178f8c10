package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
)

// Full worked example: junior base 10M, 800k allowances, net +800k
// bonus/penalty, two missed days deducted, both opt-ins on.
func TestComputePayroll_WorkedExample(t *testing.T) {
	result := ComputePayroll(CalculationInput{
		BaseSalary:      decimal.NewFromInt(10_000_000),
		NetBonusPenalty: decimal.NewFromInt(800_000),
		Allowances: payroll.Allowances{
			Meal:      decimal.NewFromInt(500_000),
			Transport: decimal.NewFromInt(300_000),
		},
		InsuranceOptIn:  true,
		TaxOptIn:        true,
		DeductionAmount: decimal.NewFromInt(769_230),
	})

	// gross = 10,000,000 + 800,000 + 800,000 - 769,230
	assert.True(t, decimal.NewFromInt(10_830_770).Equal(result.GrossIncome), "gross: %s", result.GrossIncome)
	assert.True(t, decimal.NewFromInt(1_050_000).Equal(result.Insurance.Total()), "insurance: %s", result.Insurance.Total())
	assert.True(t, decimal.NewFromInt(9_780_770).Equal(result.TaxableIncome), "taxable: %s", result.TaxableIncome)
	// 250,000 + 4,780,770 * 10%
	assert.True(t, decimal.NewFromInt(728_077).Equal(result.TaxAmount), "tax: %s", result.TaxAmount)
	assert.True(t, decimal.NewFromInt(9_052_693).Equal(result.NetPay), "net: %s", result.NetPay)
}

func TestComputePayroll_OptOuts(t *testing.T) {
	result := ComputePayroll(CalculationInput{
		BaseSalary:      decimal.NewFromInt(10_000_000),
		InsuranceOptIn:  false,
		TaxOptIn:        false,
		DeductionAmount: decimal.Zero,
	})

	assert.True(t, result.Insurance.Total().IsZero())
	assert.True(t, result.TaxAmount.IsZero())
	assert.True(t, decimal.NewFromInt(10_000_000).Equal(result.NetPay))
}

// The deduction reduces gross income once; nothing downstream subtracts it
// again.
func TestComputePayroll_DeductionAppliedOnce(t *testing.T) {
	deduction := decimal.NewFromInt(384_615)
	base := CalculationInput{
		BaseSalary:     decimal.NewFromInt(10_000_000),
		InsuranceOptIn: false,
		TaxOptIn:       false,
	}
	withDeduction := base
	withDeduction.DeductionAmount = deduction

	clean := ComputePayroll(base)
	deducted := ComputePayroll(withDeduction)

	assert.True(t, clean.GrossIncome.Sub(deducted.GrossIncome).Equal(deduction))
	assert.True(t, clean.NetPay.Sub(deducted.NetPay).Equal(deduction))
}

func TestComputePayroll_NetPayFlooredAtZero(t *testing.T) {
	result := ComputePayroll(CalculationInput{
		BaseSalary:      decimal.NewFromInt(1_000_000),
		NetBonusPenalty: decimal.NewFromInt(-5_000_000),
		InsuranceOptIn:  true,
		TaxOptIn:        true,
		DeductionAmount: decimal.NewFromInt(500_000),
	})

	assert.True(t, result.NetPay.IsZero())
	assert.True(t, result.GrossIncome.IsNegative())
	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.TaxAmount.IsZero())
}

func TestComputePayroll_TaxableIncomeClamped(t *testing.T) {
	// Insurance exceeds gross; taxable income clamps to zero instead of going
	// negative.
	result := ComputePayroll(CalculationInput{
		BaseSalary:      decimal.NewFromInt(10_000_000),
		NetBonusPenalty: decimal.NewFromInt(-9_500_000),
		InsuranceOptIn:  true,
		TaxOptIn:        true,
	})

	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.TaxAmount.IsZero())
}
