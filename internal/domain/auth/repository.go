package auth

import (
	"context"
	"time"
)

// RefreshToken entity
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// JWTRepository persists refresh tokens so logout can revoke them.
type JWTRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt time.Time) error
	IsActive(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
