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

// touristHandler handles HTTP requests related to tourist profiles.
type touristHandler struct {
	touristService portssvc.TouristSvcFacade
}

func newTouristHandler(ts portssvc.TouristSvcFacade) *touristHandler {
	return &touristHandler{touristService: ts}
}

// registerTouristRoutes registers routes related to tourists.
func registerTouristRoutes(rg *gin.RouterGroup, touristService portssvc.TouristSvcFacade) {
	h := newTouristHandler(touristService)

	tourists := rg.Group("/tourists")
	{
		tourists.GET("", middleware.RequireEmployee(), h.listTourists)
		tourists.GET("/:touristID", h.getTourist)
		tourists.PUT("/:touristID", h.updateTourist)
	}
}

// listTourists godoc
// @Summary List all tourists
// @Description Retrieves all tourist profiles with their user accounts
// @Tags tourists
// @Produce  json
// @Success 200 {array} domain.Tourist
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Employee role required"
// @Failure 500 {object} map[string]string "Failed to list tourists"
// @Security BearerAuth
// @Router /tourists [get]
func (h *touristHandler) listTourists(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tourists, err := h.touristService.ListTourists(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list tourists", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tourists"})
		return
	}

	c.JSON(http.StatusOK, tourists)
}

// getTourist godoc
// @Summary Get a tourist by ID
// @Description Retrieves a tourist profile
// @Tags tourists
// @Produce  json
// @Param   touristID path string true "Tourist ID"
// @Success 200 {object} domain.Tourist
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Failed to retrieve tourist"
// @Security BearerAuth
// @Router /tourists/{touristID} [get]
func (h *touristHandler) getTourist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	touristID := c.Param("touristID")

	tourist, err := h.touristService.GetTouristByID(c.Request.Context(), touristID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist not found"})
		} else {
			logger.Error("Failed to get tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tourist"})
		}
		return
	}

	c.JSON(http.StatusOK, tourist)
}

// updateTourist godoc
// @Summary Update a tourist profile
// @Description Updates the profile fields of a tourist
// @Tags tourists
// @Accept  json
// @Produce  json
// @Param   touristID path string true "Tourist ID"
// @Param   tourist body dto.UpdateTouristRequest true "Fields to update"
// @Success 200 {object} domain.Tourist
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Failed to update tourist"
// @Security BearerAuth
// @Router /tourists/{touristID} [put]
func (h *touristHandler) updateTourist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	touristID := c.Param("touristID")

	var req dto.UpdateTouristRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTourist", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tourist, err := h.touristService.UpdateTourist(c.Request.Context(), touristID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist not found"})
		} else {
			logger.Error("Failed to update tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tourist"})
		}
		return
	}

	c.JSON(http.StatusOK, tourist)
}
