package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/httpresp"
	ucStats "github.com/barberia-elite/booking-api/internal/usecase/stats"
)

type AnalyticsHandler struct {
	statsUC     *ucStats.GetStats
	dashboardUC *ucStats.GetDashboardStats
}

func NewAnalyticsHandler(
	statsUC *ucStats.GetStats,
	dashboardUC *ucStats.GetDashboardStats,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		statsUC:     statsUC,
		dashboardUC: dashboardUC,
	}
}

func (h *AnalyticsHandler) Stats(c *gin.Context) {
	summary, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dashboard)
}
