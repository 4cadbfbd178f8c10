package user

import (
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/validator"
)

type UpdateUserRequest struct {
	ID            string
	FullName      *string `json:"full_name,omitempty"`
	Department    *string `json:"department,omitempty"`
	PayGrade      *string `json:"pay_grade,omitempty"`
	Role          *string `json:"role,omitempty"`
	InsuranceFlag *bool   `json:"insurance_flag,omitempty"`
	TaxFlag       *bool   `json:"tax_flag,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.PayGrade != nil && !PayGrade(*r.PayGrade).Valid() {
		errs = append(errs, validator.ValidationError{Field: "pay_grade", Message: "unknown pay grade"})
	}
	if r.Role != nil && *r.Role != string(RoleAdmin) && *r.Role != string(RoleEmployee) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be admin or employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MemberResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	FullName      string  `json:"full_name"`
	Department    *string `json:"department,omitempty"`
	PayGrade      string  `json:"pay_grade"`
	Role          string  `json:"role"`
	InsuranceFlag bool    `json:"insurance_flag"`
	TaxFlag       bool    `json:"tax_flag"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
}
