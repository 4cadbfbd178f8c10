package report

import (
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/validator"
)

type CreateReportRequest struct {
	UserID  string `json:"-"`
	Email   string `json:"-"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *CreateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	Email     string  `json:"email"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type Filter struct {
	UserID   *string
	Status   *string
	DateFrom *string
	DateTo   *string
	Page     int
	Limit    int
}

type ListReportsResponse struct {
	Data       []ReportResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
