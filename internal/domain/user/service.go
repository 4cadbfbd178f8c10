package user

import "context"

// UserService defines the member directory operations.
type UserService interface {
	ListMembers(ctx context.Context) ([]MemberResponse, error)
	GetMember(ctx context.Context, id string) (MemberResponse, error)
	// UpdateMember patches profile and payroll-relevant fields. Admin only.
	UpdateMember(ctx context.Context, req UpdateUserRequest) (MemberResponse, error)
}
