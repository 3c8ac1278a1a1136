package banner

import (
	"github.com/gin-gonic/gin"

	"github.com/mediblues/directory-api/internal/handler"
	"github.com/mediblues/directory-api/internal/model"
	bannerService "github.com/mediblues/directory-api/internal/service/banner"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
	"github.com/mediblues/directory-api/pkg/httputil"
)

type Handler struct {
	service bannerService.BannerServicer
}

func NewHandler(service bannerService.BannerServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/banners", h.ListBanners)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	banners := r.Group("/banners")
	{
		banners.GET("", h.ListAllBanners)
		banners.GET("/:id", h.GetBanner)
		banners.POST("", h.CreateBanner)
		banners.PUT("/:id", h.UpdateBanner)
		banners.DELETE("/:id", h.DeleteBanner)
	}
}

func (h *Handler) CreateBanner(c *gin.Context) {
	var req model.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	banner, err := h.service.CreateBanner(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, banner)
}

func (h *Handler) GetBanner(c *gin.Context) {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	banner, err := h.service.GetBanner(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, banner)
}

func (h *Handler) UpdateBanner(c *gin.Context) {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	var req model.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation(err.Error(), err))
		return
	}

	banner, err := h.service.UpdateBanner(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, banner)
}

func (h *Handler) DeleteBanner(c *gin.Context) {
	id, err := handler.ParseIDParam(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	if err := h.service.DeleteBanner(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"deleted": true})
}

func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := h.service.ListBanners(c.Request.Context(), false)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, banners)
}

func (h *Handler) ListAllBanners(c *gin.Context) {
	banners, err := h.service.ListBanners(c.Request.Context(), true)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, banners)
}
