package report

import (
	"context"
	"time"
)

// ReportRepository defines data access methods for daily reports.
type ReportRepository interface {
	Create(ctx context.Context, r DailyReport) (DailyReport, error)
	GetByID(ctx context.Context, id string) (DailyReport, error)
	List(ctx context.Context, filter Filter) ([]DailyReport, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status) (DailyReport, error)
	// ExistsOnDay reports whether the user filed a report with a creation
	// timestamp inside [startOfDay, endOfDay] of the given day. Consumed by
	// the payroll deduction scanner.
	ExistsOnDay(ctx context.Context, email string, day time.Time) (bool, error)
}
