package statistics

import (
	"github.com/gin-gonic/gin"

	statisticsService "github.com/mediblues/directory-api/internal/service/statistics"
	"github.com/mediblues/directory-api/pkg/httputil"
)

type Handler struct {
	service statisticsService.StatisticsServicer
}

func NewHandler(service statisticsService.StatisticsServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/statistics", h.DashboardStatistics)
}

func (h *Handler) DashboardStatistics(c *gin.Context) {
	stats, err := h.service.DashboardStatistics(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, stats)
}
