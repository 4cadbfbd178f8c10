package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/expense"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `e.id, e.user_id, e.amount, e.category, e.description,
	e.spent_at, e.status, e.approved_by, e.created_at, e.updated_at, u.full_name`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var exp expense.Expense
	err := row.Scan(
		&exp.ID, &exp.UserID, &exp.Amount, &exp.Category, &exp.Description,
		&exp.SpentAt, &exp.Status, &exp.ApprovedBy, &exp.CreatedAt, &exp.UpdatedAt,
		&exp.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, err
	}
	return exp, nil
}

func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO expenses (id, user_id, amount, category, description, spent_at, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + expenseColumns + `
		FROM inserted e
		JOIN users u ON e.user_id = u.id
	`

	created, err := scanExpense(q.QueryRow(ctx, query,
		e.ID, e.UserID, e.Amount, e.Category, e.Description, e.SpentAt, e.Status,
	))
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return created, nil
}

func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN users u ON e.user_id = u.id
		WHERE e.id = $1
	`
	return scanExpense(q.QueryRow(ctx, query, id))
}

func (r *expenseRepositoryImpl) List(ctx context.Context, filter expense.Filter) ([]expense.Expense, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM expenses e JOIN users u ON e.user_id = u.id WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		baseQuery += fmt.Sprintf(" AND e.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND e.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Category != nil {
		baseQuery += fmt.Sprintf(" AND e.category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf("SELECT %s%s ORDER BY e.created_at DESC LIMIT $%d OFFSET $%d",
		expenseColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, exp)
	}
	return expenses, totalCount, rows.Err()
}

func (r *expenseRepositoryImpl) UpdateStatus(ctx context.Context, id string, status expense.Status, approvedBy string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE expenses
			SET status = $1, approved_by = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING *
		)
		SELECT ` + expenseColumns + `
		FROM updated e
		JOIN users u ON e.user_id = u.id
	`
	return scanExpense(q.QueryRow(ctx, query, status, approvedBy, id))
}
