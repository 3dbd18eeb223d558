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

// feedbackHandler handles HTTP requests related to trip feedback.
type feedbackHandler struct {
	feedbackService portssvc.FeedbackSvcFacade
}

func newFeedbackHandler(fs portssvc.FeedbackSvcFacade) *feedbackHandler {
	return &feedbackHandler{feedbackService: fs}
}

// registerFeedbackRoutes registers routes related to feedback.
func registerFeedbackRoutes(rg *gin.RouterGroup, feedbackService portssvc.FeedbackSvcFacade) {
	h := newFeedbackHandler(feedbackService)

	feedback := rg.Group("/feedback")
	{
		feedback.POST("", h.createFeedback)
		feedback.GET("/trip/:tripID", h.listFeedbackByTrip)
		feedback.GET("/tourist/:touristID", h.listFeedbackByTourist)
	}
}

// createFeedback godoc
// @Summary Leave feedback for a trip
// @Description Stores a rating and comment, tagged with the comment's classified sentiment
// @Tags feedback
// @Accept  json
// @Produce  json
// @Param   feedback body dto.CreateFeedbackRequest true "Feedback details"
// @Success 201 {object} domain.Feedback
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip or tourist not found"
// @Failure 500 {object} map[string]string "Failed to create feedback"
// @Security BearerAuth
// @Router /feedback [post]
func (h *feedbackHandler) createFeedback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFeedback", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip or tourist not found"})
		} else {
			logger.Error("Failed to create feedback", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create feedback"})
		}
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// listFeedbackByTrip godoc
// @Summary List feedback for a trip
// @Tags feedback
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} domain.Feedback
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list feedback"
// @Security BearerAuth
// @Router /feedback/trip/{tripID} [get]
func (h *feedbackHandler) listFeedbackByTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	feedback, err := h.feedbackService.ListFeedbackByTrip(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to list feedback by trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list feedback"})
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// listFeedbackByTourist godoc
// @Summary List feedback left by a tourist
// @Tags feedback
// @Produce  json
// @Param   touristID path string true "Tourist ID"
// @Success 200 {array} domain.Feedback
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list feedback"
// @Security BearerAuth
// @Router /feedback/tourist/{touristID} [get]
func (h *feedbackHandler) listFeedbackByTourist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	touristID := c.Param("touristID")

	feedback, err := h.feedbackService.ListFeedbackByTourist(c.Request.Context(), touristID)
	if err != nil {
		logger.Error("Failed to list feedback by tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list feedback"})
		return
	}

	c.JSON(http.StatusOK, feedback)
}
