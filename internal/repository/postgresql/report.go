package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/report"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

const reportColumns = `dr.id, dr.user_id, dr.email, dr.title, dr.content,
	dr.status, dr.created_at, dr.updated_at, u.full_name`

func scanReport(row pgx.Row) (report.DailyReport, error) {
	var rep report.DailyReport
	err := row.Scan(
		&rep.ID, &rep.UserID, &rep.Email, &rep.Title, &rep.Content,
		&rep.Status, &rep.CreatedAt, &rep.UpdatedAt, &rep.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.DailyReport{}, report.ErrReportNotFound
		}
		return report.DailyReport{}, err
	}
	return rep, nil
}

func (r *reportRepositoryImpl) Create(ctx context.Context, rep report.DailyReport) (report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO daily_reports (id, user_id, email, title, content, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT ` + reportColumns + `
		FROM inserted dr
		JOIN users u ON dr.user_id = u.id
	`

	created, err := scanReport(q.QueryRow(ctx, query,
		rep.ID, rep.UserID, rep.Email, rep.Title, rep.Content, rep.Status,
	))
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to create daily report: %w", err)
	}
	return created, nil
}

func (r *reportRepositoryImpl) GetByID(ctx context.Context, id string) (report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reportColumns + `
		FROM daily_reports dr
		JOIN users u ON dr.user_id = u.id
		WHERE dr.id = $1
	`
	return scanReport(q.QueryRow(ctx, query, id))
}

func (r *reportRepositoryImpl) List(ctx context.Context, filter report.Filter) ([]report.DailyReport, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM daily_reports dr JOIN users u ON dr.user_id = u.id WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		baseQuery += fmt.Sprintf(" AND dr.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND dr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.DateFrom != nil {
		baseQuery += fmt.Sprintf(" AND dr.created_at >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		baseQuery += fmt.Sprintf(" AND dr.created_at < ($%d::date + 1)", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily reports: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf("SELECT %s%s ORDER BY dr.created_at DESC LIMIT $%d OFFSET $%d",
		reportColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily reports: %w", err)
	}
	defer rows.Close()

	var reports []report.DailyReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, rep)
	}
	return reports, totalCount, rows.Err()
}

func (r *reportRepositoryImpl) UpdateStatus(ctx context.Context, id string, status report.Status) (report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE daily_reports
			SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING *
		)
		SELECT ` + reportColumns + `
		FROM updated dr
		JOIN users u ON dr.user_id = u.id
	`
	return scanReport(q.QueryRow(ctx, query, status, id))
}

func (r *reportRepositoryImpl) ExistsOnDay(ctx context.Context, email string, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM daily_reports
			WHERE email = $1 AND created_at >= $2 AND created_at < $3
		)
	`
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var exists bool
	if err := q.QueryRow(ctx, query, email, startOfDay, endOfDay).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
