package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcore-api/utils"
)

const testSecret = "middleware-secret"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		userID := c.GetUint("userID")
		role := c.GetString("role")
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	router.GET("/admin", AuthMiddleware(testSecret), AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newProtectedRouter()

	rec := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newProtectedRouter()

	rec := doRequest(router, "/protected", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router := newProtectedRouter()

	token, _, err := utils.GenerateToken(1, "customer", testSecret, -time.Minute)
	require.NoError(t, err)

	rec := doRequest(router, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := newProtectedRouter()

	token, _, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(router, "/protected", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":7`)
}

func TestAdminMiddleware_RejectsNonAdmin(t *testing.T) {
	router := newProtectedRouter()

	token, _, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(router, "/admin", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminMiddleware_AllowsAdmin(t *testing.T) {
	router := newProtectedRouter()

	token, _, err := utils.GenerateToken(7, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	rec := doRequest(router, "/admin", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
