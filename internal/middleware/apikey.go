package middleware // middleware provides shared request processing for handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAPIKey returns a middleware function that enforces that the
// "api-key" query parameter matches the configured shared secret.  A
// mismatch is rejected with 403 and the same error envelope the cafe API
// uses elsewhere; the handler never runs, so the targeted row is untouched.
func RequireAPIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			supplied := c.QueryParam("api-key")
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
				return c.JSON(http.StatusForbidden, map[string]any{
					"error": map[string]string{
						"Not Found": "Sorry, you are not authorized to delete the cafe.",
					},
				})
			}
			return next(c)
		}
	}
}
