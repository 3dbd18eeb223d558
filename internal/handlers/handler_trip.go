package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portssvc "github.com/mlakumulu/travel_backend/internal/core/ports/services"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/middleware"
)

// tripHandler handles HTTP requests related to trips.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
	userService portssvc.UserSvcFacade
}

func newTripHandler(ts portssvc.TripSvcFacade, us portssvc.UserSvcFacade) *tripHandler {
	return &tripHandler{tripService: ts, userService: us}
}

// registerTripRoutes registers routes related to trips.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade, userService portssvc.UserSvcFacade) {
	h := newTripHandler(tripService, userService)

	trips := rg.Group("/trips")
	{
		trips.GET("", middleware.RequireEmployee(), h.listTrips)
		trips.GET("/:tripID", h.getTrip)
		trips.GET("/tourist/:touristID", h.listTripsByTourist)
		trips.POST("", middleware.RequireEmployee(), h.createTrip)
		trips.PUT("/:tripID", middleware.RequireEmployee(), h.updateTrip)
		trips.DELETE("/:tripID", middleware.RequireEmployee(), h.deleteTrip)
	}
}

// actingEmployeeID resolves the caller's employee profile id. Billing is
// keyed on this: trip mutations synthesize ledger entries only when the
// caller maps to an employee profile. A caller without one (including an
// EMPLOYEE-role token whose profile row is missing) mutates the trip
// without touching the ledger.
func (h *tripHandler) actingEmployeeID(c *gin.Context) (*string, error) {
	role, ok := middleware.GetUserRoleFromCtx(c.Request.Context())
	if !ok || role != string(domain.RoleEmployee) {
		return nil, nil
	}
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		return nil, nil
	}

	employee, err := h.userService.GetEmployeeByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee.EmployeeID, nil
}

// listTrips godoc
// @Summary List all trips
// @Description Retrieves all trips with their owning tourists
// @Tags trips
// @Produce  json
// @Success 200 {array} domain.Trip
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Employee role required"
// @Failure 500 {object} map[string]string "Failed to list trips"
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trips, err := h.tripService.ListTrips(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list trips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, trips)
}

// getTrip godoc
// @Summary Get a trip by ID
// @Description Retrieves a specific trip
// @Tags trips
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} domain.Trip
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to retrieve trip"
// @Security BearerAuth
// @Router /trips/{tripID} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	trip, err := h.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logger.Error("Failed to get trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trip"})
		}
		return
	}

	c.JSON(http.StatusOK, trip)
}

// listTripsByTourist godoc
// @Summary List trips for a tourist
// @Description Employees see any tourist's trips; tourists see their own
// @Tags trips
// @Produce  json
// @Param   touristID path string true "Tourist ID"
// @Success 200 {array} domain.Trip
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist profile not found"
// @Failure 500 {object} map[string]string "Failed to list trips"
// @Security BearerAuth
// @Router /trips/tourist/{touristID} [get]
func (h *tripHandler) listTripsByTourist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	touristID := c.Param("touristID")

	role, _ := middleware.GetUserRoleFromCtx(c.Request.Context())

	var trips []domain.Trip
	var err error
	if role == string(domain.RoleEmployee) {
		trips, err = h.tripService.ListTripsByTourist(c.Request.Context(), touristID)
	} else {
		// Tourists only ever see their own trips, whatever id they ask for.
		userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		trips, err = h.tripService.ListTripsByTouristUser(c.Request.Context(), userID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist profile not found"})
		} else {
			logger.Error("Failed to list trips by tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips"})
		}
		return
	}

	c.JSON(http.StatusOK, trips)
}

// createTrip godoc
// @Summary Book a new trip
// @Description Creates a trip and records the payment transaction for it
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Employee role required"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Failed to create trip"
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employeeID, err := h.actingEmployeeID(c)
	if err != nil {
		logger.Error("Failed to resolve acting employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	trip, txn, err := h.tripService.CreateTrip(c.Request.Context(), req, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist not found"})
		} else {
			logger.Error("Failed to create trip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripResponse(trip, txn))
}

// updateTrip godoc
// @Summary Update a trip
// @Description Updates a trip; a price change records an adjustment transaction
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   trip body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Employee role required"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to update trip"
// @Security BearerAuth
// @Router /trips/{tripID} [put]
func (h *tripHandler) updateTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employeeID, err := h.actingEmployeeID(c)
	if err != nil {
		logger.Error("Failed to resolve acting employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip"})
		return
	}

	trip, txn, err := h.tripService.UpdateTrip(c.Request.Context(), tripID, req, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logger.Error("Failed to update trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip, txn))
}

// deleteTrip godoc
// @Summary Cancel a trip
// @Description Deletes a trip, synthesizing a refund transaction when the trip was paid
// @Tags trips
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.DeleteTripResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Employee role required"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to delete trip"
// @Security BearerAuth
// @Router /trips/{tripID} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	employeeID, err := h.actingEmployeeID(c)
	if err != nil {
		logger.Error("Failed to resolve acting employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		return
	}

	result, err := h.tripService.DeleteTrip(c.Request.Context(), tripID, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logger.Error("Failed to delete trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
