package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

func NewDashboardHandler(
	dashboardService service.DashboardService,
	logger *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	resp, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to build dashboard", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
