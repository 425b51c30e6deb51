package domain

import (
	"errors"
	"time"
)

// ErrPostNotFound covers both a missing post and a post owned by someone
// else; callers must not be able to tell the two apart.
var ErrPostNotFound = errors.New("post not found")

// Post is a blog entry owned by exactly one user.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
