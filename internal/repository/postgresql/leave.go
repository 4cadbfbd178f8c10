package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/leave"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `lr.id, lr.user_id, lr.start_date, lr.end_date, lr.reason,
	lr.status, lr.approved_by, lr.created_at, lr.updated_at, u.full_name, u.email`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.UserID, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Status, &req.ApprovedBy, &req.CreatedAt, &req.UpdatedAt,
		&req.UserName, &req.UserEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (id, user_id, start_date, end_date, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM inserted lr
		JOIN users u ON lr.user_id = u.id
	`

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		req.ID, req.UserID, req.StartDate, req.EndDate, req.Reason, req.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		JOIN users u ON lr.user_id = u.id
		WHERE lr.id = $1
	`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM leave_requests lr JOIN users u ON lr.user_id = u.id WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		baseQuery += fmt.Sprintf(" AND lr.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf("SELECT %s%s ORDER BY lr.created_at DESC LIMIT $%d OFFSET $%d",
		leaveColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, totalCount, rows.Err()
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE leave_requests
			SET status = $1, approved_by = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM updated lr
		JOIN users u ON lr.user_id = u.id
	`
	return scanLeaveRequest(q.QueryRow(ctx, query, status, approvedBy, id))
}

func (r *leaveRepositoryImpl) GetApprovedRangesOverlapping(ctx context.Context, userID string, from, to time.Time) ([]leave.DateRange, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT start_date, end_date
		FROM leave_requests
		WHERE user_id = $1 AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
	`
	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave ranges: %w", err)
	}
	defer rows.Close()

	var ranges []leave.DateRange
	for rows.Next() {
		var dr leave.DateRange
		if err := rows.Scan(&dr.Start, &dr.End); err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
	}
	return ranges, rows.Err()
}

func (r *leaveRepositoryImpl) HasOverlapping(ctx context.Context, userID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE user_id = $1 AND status IN ('pending', 'approved')
			  AND start_date <= $3 AND end_date >= $2
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, userID, from, to).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
