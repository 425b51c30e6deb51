package ports

import (
	"context"

	"github.com/duhduh/blog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// email unique constraint rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
