package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reportusecases "github.com/techile/fieldportal/internal/application/report/usecases"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type DashboardHandler struct {
	stats  reportusecases.DashboardStatsExecutor
	logger logger.Interface
}

func NewDashboardHandler(stats reportusecases.DashboardStatsExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{stats: stats, logger: logger}
}

// GetStats returns the admin dashboard summary.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
