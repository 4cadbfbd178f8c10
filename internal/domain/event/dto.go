package event

import (
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	UserID    string  `json:"-"`
	EventName string  `json:"event_name"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventName) {
		errs = append(errs, validator.ValidationError{Field: "event_name", Message: "is required"})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	ID        string  `json:"id"`
	EventName string  `json:"event_name"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type Filter struct {
	EventName *string
	UserID    *string
	Page      int
	Limit     int
}

type ListReviewsResponse struct {
	Data       []ReviewResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
