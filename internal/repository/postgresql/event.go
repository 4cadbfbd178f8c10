package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/event"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

const eventColumns = `er.id, er.event_name, er.user_id, er.rating, er.comment,
	er.created_at, u.full_name`

func scanEventReview(row pgx.Row) (event.EventReview, error) {
	var rev event.EventReview
	err := row.Scan(
		&rev.ID, &rev.EventName, &rev.UserID, &rev.Rating, &rev.Comment,
		&rev.CreatedAt, &rev.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.EventReview{}, event.ErrReviewNotFound
		}
		return event.EventReview{}, err
	}
	return rev, nil
}

func (r *eventRepositoryImpl) Create(ctx context.Context, review event.EventReview) (event.EventReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO event_reviews (id, event_name, user_id, rating, comment)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT ` + eventColumns + `
		FROM inserted er
		JOIN users u ON er.user_id = u.id
	`

	created, err := scanEventReview(q.QueryRow(ctx, query,
		review.ID, review.EventName, review.UserID, review.Rating, review.Comment,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_event_review_user") {
			return event.EventReview{}, event.ErrAlreadyReviewed
		}
		return event.EventReview{}, fmt.Errorf("failed to create event review: %w", err)
	}
	return created, nil
}

func (r *eventRepositoryImpl) List(ctx context.Context, filter event.Filter) ([]event.EventReview, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM event_reviews er JOIN users u ON er.user_id = u.id WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.EventName != nil {
		baseQuery += fmt.Sprintf(" AND er.event_name = $%d", argIdx)
		args = append(args, *filter.EventName)
		argIdx++
	}
	if filter.UserID != nil {
		baseQuery += fmt.Sprintf(" AND er.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count event reviews: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf("SELECT %s%s ORDER BY er.created_at DESC LIMIT $%d OFFSET $%d",
		eventColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list event reviews: %w", err)
	}
	defer rows.Close()

	var reviews []event.EventReview
	for rows.Next() {
		rev, err := scanEventReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, totalCount, rows.Err()
}
