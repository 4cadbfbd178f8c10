package auth

import "context"

// AuthService defines the authentication operations.
type AuthService interface {
	// Register creates an employee account. Admin only.
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Refresh rotates the refresh token: the presented token is revoked and
	// a fresh pair is issued.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	// GoogleAuthURL returns the consent page URL for the given CSRF state.
	GoogleAuthURL(state string) (string, error)
	// GoogleCallback exchanges the OAuth code and logs the matched account
	// in. Unknown emails are rejected; sign-in never auto-provisions.
	GoogleCallback(ctx context.Context, code string) (TokenResponse, error)
	Me(ctx context.Context) (UserResponse, error)
}
