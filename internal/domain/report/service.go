package report

import "context"

// ReportService defines the daily report operations.
type ReportService interface {
	// CreateReport files today's report; a second report on the same day is
	// rejected.
	CreateReport(ctx context.Context, req CreateReportRequest) (ReportResponse, error)
	GetReport(ctx context.Context, id string) (ReportResponse, error)
	ListReports(ctx context.Context, filter Filter) (ListReportsResponse, error)
	// Approve and Reject act on pending reports only. Admin only.
	Approve(ctx context.Context, id string) (ReportResponse, error)
	Reject(ctx context.Context, id string) (ReportResponse, error)
}
