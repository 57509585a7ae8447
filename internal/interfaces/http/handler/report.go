package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/plastpack/erp/internal/application/report"
)

// ReportHandler handles reporting and dashboard requests
type ReportHandler struct {
	BaseHandler
	reports   *report.ReportService
	dashboard *report.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports *report.ReportService, dashboard *report.DashboardService) *ReportHandler {
	return &ReportHandler{reports: reports, dashboard: dashboard}
}

// RegisterRoutes registers the report and dashboard routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/stock", h.Stock)
		reports.GET("/profit-loss", h.ProfitLoss)
	}
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Stats)
		dashboard.GET("/charts", h.Charts)
	}
}

// Stock returns the stock valuation report over the active catalog
func (h *ReportHandler) Stock(c *gin.Context) {
	stockReport, err := h.reports.Stock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stockReport)
}

// ProfitLoss returns the per-item profit report for a date range given as
// from/to query parameters in YYYY-MM-DD
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	profitReport, err := h.reports.ProfitLoss(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profitReport)
}

// Stats returns the dashboard headline numbers
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// Charts returns the six-month purchase and sales series
func (h *ReportHandler) Charts(c *gin.Context) {
	points, err := h.dashboard.Charts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, points)
}
