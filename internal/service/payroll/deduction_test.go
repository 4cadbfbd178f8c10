package payroll

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func scanTestTarget() ScanTarget {
	return ScanTarget{
		UserID:     "user-1",
		Email:      "emp@officemate.io",
		BaseSalary: decimal.NewFromInt(10_000_000),
	}
}

func noLeave(ctx context.Context, userID string, day time.Time) (bool, error) {
	return false, nil
}

func allReported(ctx context.Context, email string, day time.Time) (bool, error) {
	return true, nil
}

func noneReported(ctx context.Context, email string, day time.Time) (bool, error) {
	return false, nil
}

// March 2025 has 31 days, five of them Sundays (2, 9, 16, 23, 30).
func TestScanDeductions_AllDaysMissed(t *testing.T) {
	asOf := time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)

	summary := ScanDeductions(context.Background(), discardLogger, scanTestTarget(),
		3, 2025, asOf, noLeave, noneReported)

	assert.Equal(t, 26, summary.TotalDays)
	// daily rate = round(10,000,000 / 26) = 384,615
	assert.True(t, decimal.NewFromInt(26*384_615).Equal(summary.TotalAmount), "got %s", summary.TotalAmount)
	assert.Equal(t, 0, summary.LookupFailures)
}

func TestScanDeductions_AllReported(t *testing.T) {
	asOf := time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)

	summary := ScanDeductions(context.Background(), discardLogger, scanTestTarget(),
		3, 2025, asOf, noLeave, allReported)

	assert.Equal(t, 0, summary.TotalDays)
	assert.True(t, summary.TotalAmount.IsZero())
	assert.Empty(t, summary.Details)
}

func TestScanDeductions_ThreeMissedDays(t *testing.T) {
	asOf := time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)
	missed := map[string]bool{"2025-03-03": true, "2025-03-04": true, "2025-03-05": true}
	reported := func(ctx context.Context, email string, day time.Time) (bool, error) {
		return !missed[day.Format("2006-01-02")], nil
	}

	summary := ScanDeductions(context.Background(), discardLogger, scanTestTarget(),
		3, 2025, asOf, noLeave, reported)

	assert.Equal(t, 3, summary.TotalDays)
	assert.True(t, decimal.NewFromInt(1_153_845).Equal(summary.TotalAmount), "got %s", summary.TotalAmount)
	for _, d := range summary.Details {
		assert.Equal(t, payroll.DeductionTypeUnreported, d.Type)
	}
}

func TestScanDeductions_SundaysNeverScanned(t *testing.T) {
	asOf := time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)
	var scanned []time.Time
	leave := func(ctx context.Context, userID string, day time.Time) (bool, error) {
		scanned = append(scanned, day)
		return false, nil
	}

	ScanDeductions(context.Background(), discardLogger, scanTestTarget(),
		3, 2025, asOf, leave, noneReported)

	assert.Len(t, scanned, 26)
	for _, day := range scanned {
		assert.NotEqual(t, time.Sunday, day.Weekday(), "scanned %s", day.Format("2006-01-02"))
	}
}

// A day covered by approved leave is typed as leave and the report lookup is
// never consulted for it.
func TestScanDeductions_LeavePrecedence(t *testing.T) {
	asOf := time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)
	leave := func(ctx context.Context, userID string, day time.Time) (bool, error) {
		return day.Day() == 3, nil
	}
	reported := func(ctx context.Context, email string, day time.Time) (bool, error) {
		if day.Day() == 3 {
			t.Fatalf("report lookup consulted for a leave day")
		}
		return true, nil
	}

	summary := ScanDeductions(context.Background(), discardLogger, scanTestTarget(),
		3, 2025, asOf, leave, reported)

	assert.Equal(t, 1, summary.TotalDays)
	assert.Equal(t, payroll.DeductionTypeLeave, summary.Details[0].Type)
	assert.Equal(t, 3, summary.Details[0].Date.Day())
}

// The current month is only scanned up to asOf's calendar day.
func TestScanDeductions_CurrentMonthClamp(t *testing.T) {
	asOf := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

	summary := ScanDeductions(context.Background(), discardLogger, scanTestTarget(),
		3, 2025, asOf, noLeave, noneReported)

	// March 1 through 10, minus Sundays March 2 and 9.
	assert.Equal(t, 8, summary.TotalDays)
	for _, d := range summary.Details {
		assert.LessOrEqual(t, d.Date.Day(), 10)
	}
}

// A failing lookup counts as a failure, not a deduction.
func TestScanDeductions_FailOpen(t *testing.T) {
	asOf := time.Date(2025, time.April, 15, 10, 0, 0, 0, time.UTC)
	leave := func(ctx context.Context, userID string, day time.Time) (bool, error) {
		if day.Day() == 3 {
			return false, errors.New("connection reset")
		}
		return false, nil
	}
	reported := func(ctx context.Context, email string, day time.Time) (bool, error) {
		if day.Day() == 4 {
			return false, errors.New("connection reset")
		}
		return true, nil
	}

	summary := ScanDeductions(context.Background(), discardLogger, scanTestTarget(),
		3, 2025, asOf, leave, reported)

	assert.Equal(t, 2, summary.LookupFailures)
	assert.Equal(t, 0, summary.TotalDays)
	assert.True(t, summary.TotalAmount.IsZero())
}
