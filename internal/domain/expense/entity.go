package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Expense entity
type Expense struct {
	ID          string
	UserID      string
	Amount      decimal.Decimal
	Category    string
	Description *string
	SpentAt     time.Time
	Status      Status
	ApprovedBy  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	UserName *string
}
