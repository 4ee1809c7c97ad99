package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler echo.HandlerFunc, userID string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	require.NoError(t, handler(c))
	return rec.Code
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(60, 3)
	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(t, handler, "user-1"))
	}
}

func TestRateLimiterBlocksBeyondBurst(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(t, handler, "user-1"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(t, handler, "user-1"))
}

func TestRateLimiterAfterJWTKeysByUser(t *testing.T) {
	const secret = "test-secret"
	rl := NewRateLimiter(1, 1)

	e := echo.New()
	g := e.Group("/api", custommw.JWTMiddleware(secret), rl.RateLimitMiddleware())
	g.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	send := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	token1, err := auth.GenerateJWT("user-1", "one@lumina-crm.io", secret, 1)
	require.NoError(t, err)
	token2, err := auth.GenerateJWT("user-2", "two@lumina-crm.io", secret, 1)
	require.NoError(t, err)

	// Two users behind the same IP each get their own bucket.
	assert.Equal(t, http.StatusOK, send(token1))
	assert.Equal(t, http.StatusOK, send(token2))
	assert.Equal(t, http.StatusTooManyRequests, send(token1))
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(t, handler, "user-1"))
	assert.Equal(t, http.StatusOK, doRequest(t, handler, "user-2"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(t, handler, "user-1"))
}
