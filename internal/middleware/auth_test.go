package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediblues/directory-api/internal/config"
	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/service/auth"
)

func newGateRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := auth.NewService(
		config.JWTConfig{Secret: "gate-secret", ExpiryHours: 1},
		config.AdminConfig{Email: "admin@example.com", Password: "pw", Name: "Admin"},
		zerolog.Nop(),
	)
	resp, err := svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "pw"})
	require.NoError(t, err)

	r := gin.New()
	protected := r.Group("/admin")
	protected.Use(NewAuthMiddleware(svc).RequireAdmin())
	protected.GET("/ping", func(c *gin.Context) {
		claims, ok := AdminFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r, resp.Token
}

func TestRequireAdminRejectsMissingToken(t *testing.T) {
	r, _ := newGateRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsBadToken(t *testing.T) {
	r, _ := newGateRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminAllowsValidToken(t *testing.T) {
	r, token := newGateRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}
