package expense

import "context"

// ExpenseRepository defines data access methods for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	List(ctx context.Context, filter Filter) ([]Expense, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string) (Expense, error)
}
