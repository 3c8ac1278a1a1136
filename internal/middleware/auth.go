package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mediblues/directory-api/internal/model"
	"github.com/mediblues/directory-api/internal/service/auth"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
	"github.com/mediblues/directory-api/pkg/httputil"
)

const contextAdminClaims = "admin_claims"

type AuthMiddleware struct {
	authService auth.AuthServicer
}

func NewAuthMiddleware(authService auth.AuthServicer) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAdmin verifies the bearer token and stores the admin claims in the
// request context.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.RespondWithError(c, apperrors.NewMissingToken())
			c.Abort()
			return
		}

		claims, err := m.authService.ValidateToken(header)
		if err != nil {
			httputil.RespondWithError(c, err)
			c.Abort()
			return
		}

		c.Set(contextAdminClaims, claims)
		c.Next()
	}
}

// AdminFromContext returns the claims stored by RequireAdmin, if any.
func AdminFromContext(c *gin.Context) (*model.AdminClaims, bool) {
	v, ok := c.Get(contextAdminClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*model.AdminClaims)
	return claims, ok
}
