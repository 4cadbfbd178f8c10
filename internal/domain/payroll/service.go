package payroll

import "context"

// PayrollService defines the payroll business operations.
type PayrollService interface {
	// ProcessPayroll creates the (employee, month, year) record, running the
	// full computation: deduction scan, insurance, tax, net pay.
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (PayrollRecordResponse, error)
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, filter Filter) (ListRecordsResponse, error)
	// UpdateRecord recomputes insurance, tax, deductions and net pay from the
	// possibly-edited inputs and overwrites the record. Last write wins.
	UpdateRecord(ctx context.Context, req UpdatePayrollRecordRequest) (PayrollRecordResponse, error)
	Approve(ctx context.Context, id string) (PayrollRecordResponse, error)
	MarkPaid(ctx context.Context, id string) (PayrollRecordResponse, error)
	// ListPendingEmployees returns active employees without a record for the
	// period yet.
	ListPendingEmployees(ctx context.Context, month, year int) ([]PendingEmployeeResponse, error)
}
