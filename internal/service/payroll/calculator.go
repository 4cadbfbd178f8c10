package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
)

// CalculationInput carries everything the aggregator needs. The caller is
// responsible for validating base salary upstream; the calculator does not
// re-validate.
type CalculationInput struct {
	BaseSalary      decimal.Decimal
	NetBonusPenalty decimal.Decimal
	Allowances      payroll.Allowances
	InsuranceOptIn  bool
	TaxOptIn        bool
	DeductionAmount decimal.Decimal
	Brackets        []TaxBracket // nil means DefaultTaxBrackets
}

type CalculationResult struct {
	GrossIncome   decimal.Decimal
	Insurance     payroll.InsuranceBreakdown
	TaxableIncome decimal.Decimal
	TaxAmount     decimal.Decimal
	NetPay        decimal.Decimal
}

// ComputePayroll aggregates the full per-period computation. The deduction
// amount is subtracted exactly once, inside gross income. Net pay is floored
// at zero; that floor is a business rule, not an oversight.
func ComputePayroll(in CalculationInput) CalculationResult {
	brackets := in.Brackets
	if brackets == nil {
		brackets = DefaultTaxBrackets
	}

	grossIncome := in.BaseSalary.
		Add(in.Allowances.Total()).
		Add(in.NetBonusPenalty).
		Sub(in.DeductionAmount)

	insurance := ComputeInsurance(in.BaseSalary, in.InsuranceOptIn)
	insuranceTotal := insurance.Total()

	taxableIncome := grossIncome.Sub(insuranceTotal)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	taxAmount := decimal.Zero
	if in.TaxOptIn {
		taxAmount = ComputeIncomeTax(taxableIncome, brackets)
	}

	netPay := grossIncome.Sub(insuranceTotal).Sub(taxAmount)
	if netPay.IsNegative() {
		netPay = decimal.Zero
	}

	return CalculationResult{
		GrossIncome:   grossIncome,
		Insurance:     insurance,
		TaxableIncome: taxableIncome,
		TaxAmount:     taxAmount,
		NetPay:        netPay,
	}
}
