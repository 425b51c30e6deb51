package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/duhduh/blog-api/internal/api/middleware"
	"github.com/duhduh/blog-api/internal/core/domain"
	"github.com/duhduh/blog-api/internal/core/ports"
)

type stubPostService struct {
	createFn func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error)
	listFn   func(ctx context.Context) ([]*domain.Post, error)
	getFn    func(ctx context.Context, id int64) (*domain.Post, error)
	updateFn func(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error)
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (s *stubPostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, input)
}

func (s *stubPostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) Update(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	return s.updateFn(ctx, input)
}

func (s *stubPostService) Delete(ctx context.Context, id, userID int64) error {
	return s.deleteFn(ctx, id, userID)
}

func TestPostHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		listFn: func(context.Context) ([]*domain.Post, error) {
			return []*domain.Post{
				{ID: 1, Title: "first", Content: "one", UserID: 1},
				{ID: 2, Title: "second", Content: "two", UserID: 2},
			}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0]["title"] != "first" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		getFn: func(_ context.Context, id int64) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts/9999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9999")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != domain.ErrPostNotFound.Error() {
		t.Fatalf("unexpected error body: %+v", resp)
	}
}

func TestPostHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		getFn: func(context.Context, int64) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPostHandler_Create_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(context.Context, ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"t","content":"c"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPostHandler_Create_OwnerFromContext(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(_ context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			if input.UserID != 7 {
				t.Fatalf("expected owner 7, got %d", input.UserID)
			}
			return &domain.Post{ID: 1, Title: input.Title, Content: input.Content, UserID: input.UserID}, nil
		},
	}
	handler := NewPostHandler(stub)

	// the payload has no say in ownership
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"t","content":"c","user_id":99}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserContextKey, &domain.User{ID: 7, Email: "alice@example.com"})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data["user_id"] != float64(7) {
		t.Fatalf("unexpected owner: %v", resp.Data["user_id"])
	}
}

func TestPostHandler_Update_NotOwner(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		updateFn: func(context.Context, ports.UpdatePostInput) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/posts/1", strings.NewReader(`{"title":"t","content":"c"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set(middleware.UserContextKey, &domain.User{ID: 2})

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPostHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		deleteFn: func(_ context.Context, id, userID int64) error {
			if id != 3 || userID != 7 {
				t.Fatalf("unexpected args: %d %d", id, userID)
			}
			return nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/posts/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	c.Set(middleware.UserContextKey, &domain.User{ID: 7})

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
