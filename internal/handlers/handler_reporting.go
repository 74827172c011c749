package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
)

// reportingHandler serves dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the dashboard metrics route.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/metrics", h.getDashboardMetrics)
	}
}

// getDashboardMetrics godoc
// @Summary Dashboard metrics
// @Description Returns the headline counts shown on the dashboard landing page.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.Envelope{data=domain.DashboardMetrics}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /dashboard/metrics [get]
func (h *reportingHandler) getDashboardMetrics(c *gin.Context) {
	metrics, err := h.reportingService.GetDashboardMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute dashboard metrics")
		return
	}

	respondSuccess(c, http.StatusOK, metrics)
}
