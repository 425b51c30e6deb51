package ports

import (
	"context"

	"github.com/duhduh/blog-api/internal/core/domain"
)

// SignupInput carries the fields required to register a new user.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService defines registration, login and bearer-token resolution.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login returns a signed access token. Unknown email and wrong
	// password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser verifies the token and resolves its subject to a live
	// user record. A valid signature over a since-deleted user fails with
	// domain.ErrInvalidToken.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
