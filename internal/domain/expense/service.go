package expense

import "context"

// ExpenseService defines the expense claim operations.
type ExpenseService interface {
	CreateExpense(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetExpense(ctx context.Context, id string) (ExpenseResponse, error)
	ListExpenses(ctx context.Context, filter Filter) (ListExpensesResponse, error)
	// Approve and Reject act on pending expenses only. Admin only.
	Approve(ctx context.Context, id string) (ExpenseResponse, error)
	Reject(ctx context.Context, id string) (ExpenseResponse, error)
}
