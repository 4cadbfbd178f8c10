package expense

import (
	"github.com/shopspring/decimal"

	"github.com/officemate-hq/officemate-backend-go/internal/pkg/validator"
)

type CreateExpenseRequest struct {
	UserID      string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	SpentAt     string          `json:"spent_at"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.SpentAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "spent_at", Message: "must be a valid YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	UserName    *string         `json:"user_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	SpentAt     string          `json:"spent_at"`
	Status      string          `json:"status"`
	ApprovedBy  *string         `json:"approved_by,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type Filter struct {
	UserID   *string
	Status   *string
	Category *string
	Page     int
	Limit    int
}

type ListExpensesResponse struct {
	Data       []ExpenseResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
