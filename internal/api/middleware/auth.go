package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/duhduh/blog-api/internal/core/ports"
)

// UserContextKey is where Auth stores the resolved *domain.User.
const UserContextKey = "user"

// Auth resolves the bearer token to a live user and injects it into the
// request context. Every failure mode returns the same 401 so callers
// cannot distinguish a missing header from a revoked identity.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			user, err := authService.CurrentUser(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
