package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/duhduh/blog-api/internal/api/metrics"
	"github.com/duhduh/blog-api/internal/core/domain"
	"github.com/duhduh/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postListEnvelope
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListEnvelope{Data: toPostListResponse(posts)})
}

// Get handles GET /posts/:id.
//
// @Summary      Get a single post
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  postEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrPostNotFound.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, postEnvelope{Data: toPostResponse(post)})
}

// Create handles POST /posts. The owner is always the authenticated caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post details"
// @Success      200   {object}  postEnvelope
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  user.ID,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, postEnvelope{Data: toPostResponse(post)})
}

// Update handles PUT /posts/:id. A post that is missing or owned by
// another user fails identically with 404.
//
// @Summary      Update an owned post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Post ID"
// @Param        body  body      postRequest  true  "New post content"
// @Success      200   {object}  postEnvelope
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Update(c.Request().Context(), ports.UpdatePostInput{
		ID:      id,
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrPostNotFound.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, postEnvelope{Data: toPostResponse(post)})
}

// Delete handles DELETE /posts/:id, with the same ownership scoping as Update.
//
// @Summary      Delete an owned post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, user.ID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrPostNotFound.Error()})
		}
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted successfully"})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	return id, nil
}
