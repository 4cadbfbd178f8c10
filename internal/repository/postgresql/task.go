package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/task"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `t.id, t.title, t.description, t.project, t.assignee_id,
	t.status, t.due_date, t.created_by, t.created_at, t.updated_at, u.full_name`

func scanTask(row pgx.Row) (task.Task, error) {
	var tk task.Task
	err := row.Scan(
		&tk.ID, &tk.Title, &tk.Description, &tk.Project, &tk.AssigneeID,
		&tk.Status, &tk.DueDate, &tk.CreatedBy, &tk.CreatedAt, &tk.UpdatedAt,
		&tk.AssigneeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}
	return tk, nil
}

func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO tasks (id, title, description, project, assignee_id, status, due_date, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + taskColumns + `
		FROM inserted t
		JOIN users u ON t.assignee_id = u.id
	`

	created, err := scanTask(q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.Project, t.AssigneeID, t.Status, t.DueDate, t.CreatedBy,
	))
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN users u ON t.assignee_id = u.id
		WHERE t.id = $1
	`
	return scanTask(q.QueryRow(ctx, query, id))
}

func (r *taskRepositoryImpl) List(ctx context.Context, filter task.Filter) ([]task.Task, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM tasks t JOIN users u ON t.assignee_id = u.id WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.AssigneeID != nil {
		baseQuery += fmt.Sprintf(" AND t.assignee_id = $%d", argIdx)
		args = append(args, *filter.AssigneeID)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND t.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Project != nil {
		baseQuery += fmt.Sprintf(" AND t.project = $%d", argIdx)
		args = append(args, *filter.Project)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf("SELECT %s%s ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d",
		taskColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		tk, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, tk)
	}
	return tasks, totalCount, rows.Err()
}

func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE tasks
			SET title = $1, description = $2, project = $3, assignee_id = $4,
				status = $5, due_date = $6, updated_at = NOW()
			WHERE id = $7
			RETURNING *
		)
		SELECT ` + taskColumns + `
		FROM updated t
		JOIN users u ON t.assignee_id = u.id
	`
	return scanTask(q.QueryRow(ctx, query,
		t.Title, t.Description, t.Project, t.AssigneeID, t.Status, t.DueDate, t.ID,
	))
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
