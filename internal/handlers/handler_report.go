package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
	"github.com/zetaenergy/zeta_books/internal/middleware"
)

// reportHandler handles HTTP requests related to reports.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.getReport)
		reports.GET("/export", h.exportReport)
	}
}

// getReport godoc
// @Summary Generate a report
// @Description Generates a period-scoped report over the transaction
// @Description collection. Period is weekly, monthly, quarterly or custom;
// @Description refDate, from and to are YYYY-MM-DD. ClientId and status
// @Description accept "all" (or empty) to disable the filter.
// @Tags reports
// @Produce json
// @Param period query string true "Report period" Enums(weekly, monthly, quarterly, custom)
// @Param refDate query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param clientId query string false "Filter by client ID"
// @Param status query string false "Filter by payment status" Enums(settled, pending, all)
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for getReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.reportingService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error generating report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to generate report in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// exportReport godoc
// @Summary Export a report as CSV
// @Description Generates the same report as GET /reports and streams it as a
// @Description CSV attachment, rows followed by a summary block.
// @Tags reports
// @Produce text/csv
// @Param period query string true "Report period" Enums(weekly, monthly, quarterly, custom)
// @Param refDate query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param clientId query string false "Filter by client ID"
// @Param status query string false "Filter by payment status" Enums(settled, pending, all)
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to export report"
// @Security BearerAuth
// @Router /reports/export [get]
func (h *reportHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for exportReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.reportingService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error exporting report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to generate report for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export report"})
		return
	}

	filename := fmt.Sprintf("report_%s_%s.csv", req.Period, report.PeriodStart)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if err := h.reportingService.WriteReportCSV(c.Writer, report); err != nil {
		// Headers are already sent; log and give up on this response.
		logger.Error("Failed to stream report CSV", slog.String("error", err.Error()))
	}
}
