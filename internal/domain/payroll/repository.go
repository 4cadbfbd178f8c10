package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByUserPeriod(ctx context.Context, userID string, month, year int) (PayrollRecord, error)
	// ListByPeriod returns every record of a period; used to exclude
	// already-processed employees from the "needs processing" queue.
	ListByPeriod(ctx context.Context, month, year int) ([]PayrollRecord, error)
	List(ctx context.Context, filter Filter) ([]PayrollRecord, int64, error)
	// Update overwrites the mutable and computed fields of a record in one
	// atomic statement. Last write wins.
	Update(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	UpdateStatus(ctx context.Context, id string, status Status) (PayrollRecord, error)
}
