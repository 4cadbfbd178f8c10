package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/user"
)

// requestClaims is the identity carried by a verified access token.
type requestClaims struct {
	UserID string
	Email  string
	Role   user.Role
}

func claimsFromRequest(r *http.Request) (requestClaims, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return requestClaims{}, err
	}

	rc := requestClaims{}
	rc.UserID, _ = claims["user_id"].(string)
	rc.Email, _ = claims["email"].(string)
	if role, ok := claims["role"].(string); ok {
		rc.Role = user.Role(role)
	}
	return rc, nil
}

func (c requestClaims) IsAdmin() bool {
	return c.Role == user.RoleAdmin
}
