package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/duhduh/blog-api/internal/core/domain"
)

type postRecord struct {
	bun.BaseModel `bun:"table:posts,alias:pst"`

	ID        int64       `bun:"id,pk,autoincrement"`
	Title     string      `bun:"title,notnull"`
	Content   string      `bun:"content,notnull"`
	UserID    int64       `bun:"user_id,notnull"`
	User      *userRecord `bun:"rel:belongs-to,join:user_id=id,on_delete:CASCADE"`
	CreatedAt time.Time   `bun:"created_at,notnull"`
}

func (r *postRecord) toDomain() *domain.Post {
	return &domain.Post{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
	}
}

// PostRepository persists posts through bun. Mutations are ownership
// scoped: update and delete filter on both id and user_id.
type PostRepository struct {
	db *bun.DB
}

func NewPostRepository(db *bun.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	rec := &postRecord{
		Title:     post.Title,
		Content:   post.Content,
		UserID:    post.UserID,
		CreatedAt: post.CreatedAt,
	}

	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	rec := new(postRecord)
	if err := r.db.NewSelect().Model(rec).Where("pst.id = ?", id).Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	var recs []postRecord
	if err := r.db.NewSelect().Model(&recs).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]*domain.Post, len(recs))
	for i := range recs {
		posts[i] = recs[i].toDomain()
	}
	return posts, nil
}

func (r *PostRepository) UpdateOwned(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	res, err := r.db.NewUpdate().
		Model((*postRecord)(nil)).
		Set("title = ?", post.Title).
		Set("content = ?", post.Content).
		Where("id = ?", post.ID).
		Where("user_id = ?", post.UserID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrPostNotFound
	}

	// fetch back the full row
	return r.FindByID(ctx, post.ID)
}

func (r *PostRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	res, err := r.db.NewDelete().
		Model((*postRecord)(nil)).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
