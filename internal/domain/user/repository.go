package user

import "context"

// UserRepository defines data access methods for the member directory.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListActive(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
}
