package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/mediblues/directory-api/internal/middleware"
	"github.com/mediblues/directory-api/internal/model"
	authService "github.com/mediblues/directory-api/internal/service/auth"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
	"github.com/mediblues/directory-api/pkg/httputil"
)

type Handler struct {
	service authService.AuthServicer
}

func NewHandler(service authService.AuthServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, resp)
}

// Me returns the identity bound to the presented token.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := middleware.AdminFromContext(c)
	if !ok {
		httputil.RespondWithError(c, apperrors.NewMissingToken())
		return
	}
	httputil.RespondWithSuccess(c, model.AdminInfo{
		Email: claims.Email,
		Role:  claims.Role,
	})
}
