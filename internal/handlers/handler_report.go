package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	portssvc "github.com/mlakumulu/travel_backend/internal/core/ports/services"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/middleware"
)

// reportHandler handles report export requests.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports", middleware.RequireEmployee())
	{
		reports.GET("/tourists/:touristID/export", h.exportReport)
	}
}

// exportReport godoc
// @Summary Export a tourist's trip report
// @Description Renders the tourist's trip history as a PDF or CSV attachment
// @Tags reports
// @Produce  application/octet-stream
// @Param   touristID path string true "Tourist ID"
// @Param   format query string false "Report format" Enums(pdf, csv) default(pdf)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Employee role required"
// @Failure 404 {object} map[string]string "Tourist not found or has no trips"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/tourists/{touristID}/export [get]
func (h *reportHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	touristID := c.Param("touristID")

	var params dto.ExportReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ExportReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	file, err := h.reportService.GenerateReport(c.Request.Context(), touristID, params.Format)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist not found or has no trips"})
		} else {
			logger.Error("Failed to generate report", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	c.FileAttachment(file.FilePath, file.FileName)
}
