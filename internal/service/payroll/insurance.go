package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
)

// Employee-side contribution rates, applied to base salary.
var (
	healthInsuranceRate       = decimal.RequireFromString("0.015")
	socialInsuranceRate       = decimal.RequireFromString("0.08")
	unemploymentInsuranceRate = decimal.RequireFromString("0.01")
)

// Employer-side matching rates. Informational only; never deducted from the
// employee's net pay.
var (
	employerHealthRate       = decimal.RequireFromString("0.03")
	employerSocialRate       = decimal.RequireFromString("0.175")
	employerUnemploymentRate = decimal.RequireFromString("0.01")
)

// ComputeInsurance returns the employee-side insurance breakdown for a base
// salary. All three fields are zero when the employee has not opted in.
func ComputeInsurance(baseSalary decimal.Decimal, opted bool) payroll.InsuranceBreakdown {
	if !opted {
		return payroll.InsuranceBreakdown{
			Health:       decimal.Zero,
			Social:       decimal.Zero,
			Unemployment: decimal.Zero,
		}
	}

	return payroll.InsuranceBreakdown{
		Health:       baseSalary.Mul(healthInsuranceRate).Round(0),
		Social:       baseSalary.Mul(socialInsuranceRate).Round(0),
		Unemployment: baseSalary.Mul(unemploymentInsuranceRate).Round(0),
	}
}

// ComputeEmployerInsurance returns the employer-side matching contributions
// for payslip display.
func ComputeEmployerInsurance(baseSalary decimal.Decimal) payroll.InsuranceBreakdown {
	return payroll.InsuranceBreakdown{
		Health:       baseSalary.Mul(employerHealthRate).Round(0),
		Social:       baseSalary.Mul(employerSocialRate).Round(0),
		Unemployment: baseSalary.Mul(employerUnemploymentRate).Round(0),
	}
}
