package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/user"
)

// baseSalaryByGrade is the static rank-to-monthly-base-salary table (VND).
// The lowest rank is unpaid; interns receive allowances only.
var baseSalaryByGrade = map[user.PayGrade]decimal.Decimal{
	user.PayGradeIntern:   decimal.Zero,
	user.PayGradeJunior:   decimal.NewFromInt(10_000_000),
	user.PayGradeSenior:   decimal.NewFromInt(18_000_000),
	user.PayGradeLead:     decimal.NewFromInt(25_000_000),
	user.PayGradeManager:  decimal.NewFromInt(32_000_000),
	user.PayGradeDirector: decimal.NewFromInt(50_000_000),
}

// BaseSalaryForGrade resolves a pay grade into its fixed monthly base salary.
func BaseSalaryForGrade(grade user.PayGrade) (decimal.Decimal, bool) {
	salary, ok := baseSalaryByGrade[grade]
	return salary, ok
}

// Status enum: pending -> approved -> paid
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
)

// LineItem - one bonus or penalty entry
type LineItem struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// Allowances breakdown with fixed categories
type Allowances struct {
	Meal      decimal.Decimal `json:"meal"`
	Transport decimal.Decimal `json:"transport"`
	Phone     decimal.Decimal `json:"phone"`
	Other     decimal.Decimal `json:"other"`
}

func (a Allowances) Total() decimal.Decimal {
	return a.Meal.Add(a.Transport).Add(a.Phone).Add(a.Other)
}

// InsuranceBreakdown - employee-side contributions deducted from net pay
type InsuranceBreakdown struct {
	Health       decimal.Decimal `json:"health"`
	Social       decimal.Decimal `json:"social"`
	Unemployment decimal.Decimal `json:"unemployment"`
}

func (i InsuranceBreakdown) Total() decimal.Decimal {
	return i.Health.Add(i.Social).Add(i.Unemployment)
}

// DeductionType enum
type DeductionType string

const (
	DeductionTypeLeave      DeductionType = "leave"
	DeductionTypeUnreported DeductionType = "unreported"
)

// DeductionDetail - one deducted day. Recomputed on every run, never diffed
// against a previous computation.
type DeductionDetail struct {
	Date    time.Time       `json:"date"`
	Type    DeductionType   `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Weekday string          `json:"weekday"`
}

// DeductionSummary - aggregate of the month's per-day deductions.
// LookupFailures counts days skipped because a leave/report query failed;
// those days accrue no deduction.
type DeductionSummary struct {
	TotalDays      int               `json:"total_days"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	Details        []DeductionDetail `json:"details"`
	LookupFailures int               `json:"lookup_failures,omitempty"`
}

// PayrollRecord - one per (employee, month, year). Employee display fields
// are copied at creation time, not live-linked.
type PayrollRecord struct {
	ID          string
	UserID      string
	Email       string
	FullName    string
	Department  *string
	PayGrade    user.PayGrade
	PeriodMonth int
	PeriodYear  int

	BaseSalary     decimal.Decimal
	Bonuses        []LineItem
	Penalties      []LineItem
	Allowances     Allowances
	InsuranceOptIn bool
	TaxOptIn       bool

	// Computed fields. Deductions are subtracted exactly once, inside
	// GrossIncome; they are never folded into Penalties.
	Insurance   InsuranceBreakdown
	TaxAmount   decimal.Decimal
	Deductions  DeductionSummary
	GrossIncome decimal.Decimal
	NetPay      decimal.Decimal

	Status    Status
	CreatedBy string
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NetBonusPenalty returns total bonuses minus total penalties.
func (r PayrollRecord) NetBonusPenalty() decimal.Decimal {
	net := decimal.Zero
	for _, b := range r.Bonuses {
		net = net.Add(b.Amount)
	}
	for _, p := range r.Penalties {
		net = net.Sub(p.Amount)
	}
	return net
}
