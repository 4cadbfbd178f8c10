package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrMissingPayGrade        = errors.New("user has no pay grade configured")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
