package handler

import "github.com/duhduh/blog-api/internal/core/domain"

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func toPostListResponse(posts []*domain.Post) []postResponse {
	out := make([]postResponse, len(posts))
	for i, p := range posts {
		out[i] = toPostResponse(p)
	}
	return out
}
