package middleware

import (
	"net/http"
	"strings"

	"github.com/GitNimay/lumino-crm-vc/pkg/auth"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/labstack/echo/v4"
)

// JWTMiddleware validates the Authorization bearer token and stores
// the caller's identity in the echo context under "user_id" and
// "email". Every query below this point is scoped to that user.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error: "missing authorization header",
				})
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error: "invalid authorization header format",
				})
			}

			claims, err := auth.ValidateJWT(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error: "invalid or expired token",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

// UserID returns the authenticated user's identifier, or "" when the
// request did not pass through JWTMiddleware.
func UserID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

// UserEmail returns the authenticated user's email address.
func UserEmail(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}
