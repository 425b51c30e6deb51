package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/duhduh/blog-api/internal/core/domain"
	"github.com/duhduh/blog-api/internal/core/ports"
)

// PostService implements post CRUD with ownership-scoped mutations.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	post := &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		UserID:    input.UserID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Int64("post_id", created.ID).Int64("user_id", created.UserID).Msg("post created")
	return created, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces title and content of a post the caller owns. The
// repository filters on both id and owner, so a foreign post is
// indistinguishable from a missing one.
func (s *PostService) Update(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	updated, err := s.repo.UpdateOwned(ctx, &domain.Post{
		ID:      input.ID,
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("post_id", updated.ID).Int64("user_id", input.UserID).Msg("post updated")
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.DeleteOwned(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("post_id", id).Int64("user_id", userID).Msg("post deleted")
	return nil
}
