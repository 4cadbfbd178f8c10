package payroll

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
)

// workingDayDivisor is the fixed per-month working-day count used to derive
// the daily rate. It is a deliberate simplification, not a calendar
// computation.
const workingDayDivisor = 26

// LeaveLookup reports whether an approved leave request covers the given day.
type LeaveLookup func(ctx context.Context, userID string, day time.Time) (bool, error)

// ReportLookup reports whether a daily report was filed on the given day.
type ReportLookup func(ctx context.Context, email string, day time.Time) (bool, error)

// ScanTarget identifies the employee being scanned.
type ScanTarget struct {
	UserID     string
	Email      string
	BaseSalary decimal.Decimal
}

// ScanDeductions walks the calendar days of (month, year) and accrues one
// per-day deduction for each workday the employee neither covered with
// approved leave nor filed a daily report for. Sundays never accrue a
// deduction. When the period is the current month the scan stops at asOf.
//
// A failing lookup fails open: the day is logged, counted in LookupFailures
// and accrues no deduction, so a transient query failure never over-penalizes
// an employee.
func ScanDeductions(
	ctx context.Context,
	logger *slog.Logger,
	target ScanTarget,
	month, year int,
	asOf time.Time,
	leaveLookup LeaveLookup,
	reportLookup ReportLookup,
) payroll.DeductionSummary {
	dailyRate := target.BaseSalary.Div(decimal.NewFromInt(workingDayDivisor)).Round(0)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, asOf.Location())
	end := first.AddDate(0, 1, -1)
	if year == asOf.Year() && time.Month(month) == asOf.Month() {
		end = time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	}

	summary := payroll.DeductionSummary{
		TotalAmount: decimal.Zero,
		Details:     []payroll.DeductionDetail{},
	}

	for day := first; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			continue
		}

		onLeave, err := leaveLookup(ctx, target.UserID, day)
		if err != nil {
			logger.Warn("leave lookup failed, no deduction recorded for day",
				slog.String("user_id", target.UserID),
				slog.String("day", day.Format("2006-01-02")),
				slog.Any("error", err),
			)
			summary.LookupFailures++
			continue
		}
		if onLeave {
			summary.Details = append(summary.Details, payroll.DeductionDetail{
				Date:    day,
				Type:    payroll.DeductionTypeLeave,
				Amount:  dailyRate,
				Weekday: day.Weekday().String(),
			})
			continue
		}

		reported, err := reportLookup(ctx, target.Email, day)
		if err != nil {
			logger.Warn("report lookup failed, no deduction recorded for day",
				slog.String("email", target.Email),
				slog.String("day", day.Format("2006-01-02")),
				slog.Any("error", err),
			)
			summary.LookupFailures++
			continue
		}
		if !reported {
			summary.Details = append(summary.Details, payroll.DeductionDetail{
				Date:    day,
				Type:    payroll.DeductionTypeUnreported,
				Amount:  dailyRate,
				Weekday: day.Weekday().String(),
			})
		}
	}

	summary.TotalDays = len(summary.Details)
	for _, d := range summary.Details {
		summary.TotalAmount = summary.TotalAmount.Add(d.Amount)
	}

	return summary
}
