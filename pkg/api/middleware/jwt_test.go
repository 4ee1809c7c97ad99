package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GitNimay/lumino-crm-vc/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-minimum-32-characters-long"

func runRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()

	var gotUserID string
	handler := JWTMiddleware(testSecret)(func(c echo.Context) error {
		gotUserID = UserID(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec, gotUserID
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	token, err := auth.GenerateJWT("user-1", "ada@acme.io", testSecret, 24)
	require.NoError(t, err)

	rec, userID := runRequest(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", userID)
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	rec, _ := runRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareMalformedHeader(t *testing.T) {
	rec, _ := runRequest(t, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareBadToken(t *testing.T) {
	rec, _ := runRequest(t, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
