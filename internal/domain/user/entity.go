package user

import "time"

// Role enum
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// PayGrade is an enumerated rank. Each rank maps to a fixed monthly base
// salary owned by the payroll domain.
type PayGrade string

const (
	PayGradeIntern   PayGrade = "intern"
	PayGradeJunior   PayGrade = "junior"
	PayGradeSenior   PayGrade = "senior"
	PayGradeLead     PayGrade = "lead"
	PayGradeManager  PayGrade = "manager"
	PayGradeDirector PayGrade = "director"
)

func (g PayGrade) Valid() bool {
	switch g {
	case PayGradeIntern, PayGradeJunior, PayGradeSenior, PayGradeLead, PayGradeManager, PayGradeDirector:
		return true
	}
	return false
}

// User - a company member
type User struct {
	ID            string
	Email         string
	PasswordHash  string
	FullName      string
	Department    *string
	PayGrade      PayGrade
	Role          Role
	InsuranceFlag bool
	TaxFlag       bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
