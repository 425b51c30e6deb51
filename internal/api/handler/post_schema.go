package handler

import "time"

type postRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type postResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type postEnvelope struct {
	Data postResponse `json:"data"`
}

type postListEnvelope struct {
	Data []postResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}
