package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rental-project/rental-server/internal/api/middleware"
)

const testSecret = "test-secret"

func newProtectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(secret))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
		})
	})
	return r
}

func doAuthed(t *testing.T, r *gin.Engine, header string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/protected", nil)
	require.NoError(t, err)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newProtectedRouter(testSecret)

	w := doAuthed(t, r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Unauthorized"}`, w.Body.String())
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newProtectedRouter(testSecret)

	token, err := middleware.GenerateAccessToken(testSecret, "jkowalski", []string{"Employee"})
	require.NoError(t, err)

	// Raw token without the Bearer prefix is rejected before verification.
	w := doAuthed(t, r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Unauthorized"}`, w.Body.String())
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := newProtectedRouter(testSecret)

	w := doAuthed(t, r, "Bearer not-a-token")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message": "Forbidden"}`, w.Body.String())
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	r := newProtectedRouter(testSecret)

	token, err := middleware.GenerateAccessToken("other-secret", "jkowalski", []string{"Employee"})
	require.NoError(t, err)

	w := doAuthed(t, r, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := newProtectedRouter(testSecret)

	token, err := middleware.GenerateAccessToken(testSecret, "jkowalski", []string{"Admin"})
	require.NoError(t, err)

	w := doAuthed(t, r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username": "jkowalski"}`, w.Body.String())
}
