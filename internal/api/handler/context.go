package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/duhduh/blog-api/internal/api/middleware"
	"github.com/duhduh/blog-api/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware.
// A route wired without the middleware fails here with a 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
