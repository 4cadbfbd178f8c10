package task

import "time"

// Status enum
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task entity
type Task struct {
	ID          string
	Title       string
	Description *string
	Project     *string
	AssigneeID  string
	Status      Status
	DueDate     *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	AssigneeName *string
}
