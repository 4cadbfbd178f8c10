package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/expense"
)

type ExpenseServiceImpl struct {
	expenseRepo expense.ExpenseRepository
}

func NewExpenseService(expenseRepo expense.ExpenseRepository) expense.ExpenseService {
	return &ExpenseServiceImpl{expenseRepo: expenseRepo}
}

func approverFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func (s *ExpenseServiceImpl) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	spentAt, _ := time.Parse("2006-01-02", req.SpentAt)

	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		SpentAt:     spentAt,
		Status:      expense.StatusPending,
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return mapToResponse(created), nil
}

func (s *ExpenseServiceImpl) GetExpense(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	exp, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return mapToResponse(exp), nil
}

func (s *ExpenseServiceImpl) ListExpenses(ctx context.Context, filter expense.Filter) (expense.ListExpensesResponse, error) {
	expenses, totalCount, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		return expense.ListExpensesResponse{}, err
	}

	data := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, mapToResponse(e))
	}
	return expense.ListExpensesResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ExpenseServiceImpl) Approve(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	return s.resolve(ctx, id, expense.StatusApproved)
}

func (s *ExpenseServiceImpl) Reject(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	return s.resolve(ctx, id, expense.StatusRejected)
}

func (s *ExpenseServiceImpl) resolve(ctx context.Context, id string, status expense.Status) (expense.ExpenseResponse, error) {
	approver, err := approverFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	exp, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	if exp.Status != expense.StatusPending {
		return expense.ExpenseResponse{}, expense.ErrExpenseAlreadyProcessed
	}

	updated, err := s.expenseRepo.UpdateStatus(ctx, id, status, approver)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return mapToResponse(updated), nil
}

func mapToResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		UserName:    e.UserName,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		SpentAt:     e.SpentAt.Format("2006-01-02"),
		Status:      string(e.Status),
		ApprovedBy:  e.ApprovedBy,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
