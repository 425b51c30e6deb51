package ports

import (
	"context"

	"github.com/duhduh/blog-api/internal/core/domain"
)

// CreatePostInput carries the data for a new post. UserID is always the
// authenticated caller, never client-supplied.
type CreatePostInput struct {
	Title   string
	Content string
	UserID  int64
}

// UpdatePostInput carries a full replacement of an owned post's content.
type UpdatePostInput struct {
	ID      int64
	UserID  int64
	Title   string
	Content string
}

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id, userID int64) error
}
