package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/officemate-hq/officemate-backend-go/internal/pkg/validator"
)

type ProcessPayrollRequest struct {
	UserID         string      `json:"user_id"`
	PeriodMonth    int         `json:"period_month"`
	PeriodYear     int         `json:"period_year"`
	Bonuses        []LineItem  `json:"bonuses,omitempty"`
	Penalties      []LineItem  `json:"penalties,omitempty"`
	Allowances     *Allowances `json:"allowances,omitempty"`
	InsuranceOptIn *bool       `json:"insurance_opt_in,omitempty"`
	TaxOptIn       *bool       `json:"tax_opt_in,omitempty"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.PeriodMonth, r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period_month must be 1-12 and period_year 2020 or later"})
	}
	errs = append(errs, validateLineItems("bonuses", r.Bonuses)...)
	errs = append(errs, validateLineItems("penalties", r.Penalties)...)
	if r.Allowances != nil {
		errs = append(errs, validateAllowances(*r.Allowances)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollRecordRequest struct {
	ID             string
	Bonuses        *[]LineItem `json:"bonuses,omitempty"`
	Penalties      *[]LineItem `json:"penalties,omitempty"`
	Allowances     *Allowances `json:"allowances,omitempty"`
	InsuranceOptIn *bool       `json:"insurance_opt_in,omitempty"`
	TaxOptIn       *bool       `json:"tax_opt_in,omitempty"`
}

func (r *UpdatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Bonuses != nil {
		errs = append(errs, validateLineItems("bonuses", *r.Bonuses)...)
	}
	if r.Penalties != nil {
		errs = append(errs, validateLineItems("penalties", *r.Penalties)...)
	}
	if r.Allowances != nil {
		errs = append(errs, validateAllowances(*r.Allowances)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateLineItems(field string, items []LineItem) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, item := range items {
		if item.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "amounts must be non-negative"})
			break
		}
	}
	for _, item := range items {
		if validator.IsEmpty(item.Reason) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "every entry needs a reason"})
			break
		}
	}
	return errs
}

func validateAllowances(a Allowances) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if a.Meal.IsNegative() || a.Transport.IsNegative() || a.Phone.IsNegative() || a.Other.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowances", Message: "amounts must be non-negative"})
	}
	return errs
}

type PayrollRecordResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Department  *string `json:"department,omitempty"`
	PayGrade    string  `json:"pay_grade"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`

	BaseSalary     decimal.Decimal `json:"base_salary"`
	Bonuses        []LineItem      `json:"bonuses"`
	Penalties      []LineItem      `json:"penalties"`
	Allowances     Allowances      `json:"allowances"`
	InsuranceOptIn bool            `json:"insurance_opt_in"`
	TaxOptIn       bool            `json:"tax_opt_in"`

	Insurance   InsuranceBreakdown `json:"insurance"`
	TaxAmount   decimal.Decimal    `json:"tax_amount"`
	Deductions  DeductionSummary   `json:"deductions"`
	GrossIncome decimal.Decimal    `json:"gross_income"`
	NetPay      decimal.Decimal    `json:"net_pay"`

	Status    string  `json:"status"`
	CreatedBy string  `json:"created_by"`
	PaidAt    *string `json:"paid_at,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type Filter struct {
	PeriodMonth *int
	PeriodYear  *int
	Status      *string
	UserID      *string
	Page        int
	Limit       int
	SortBy      string
	SortOrder   string
}

type ListRecordsResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// PendingEmployeeResponse - an active employee with no payroll record for
// the requested period yet.
type PendingEmployeeResponse struct {
	UserID     string  `json:"user_id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Department *string `json:"department,omitempty"`
	PayGrade   string  `json:"pay_grade"`
}
