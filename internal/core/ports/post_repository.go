package ports

import (
	"context"

	"github.com/duhduh/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	// UpdateOwned updates title and content of the post matching both
	// post.ID and post.UserID. Returns domain.ErrPostNotFound when no row
	// matches, whether the post is missing or owned by another user.
	UpdateOwned(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// DeleteOwned removes the post matching both id and userID, with the
	// same not-found semantics as UpdateOwned.
	DeleteOwned(ctx context.Context, id, userID int64) error
}
