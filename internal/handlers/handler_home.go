package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mlakumulu/travel_backend/internal/middleware"
)

// healthHandler reports service and database liveness.
type healthHandler struct {
	dbPool *pgxpool.Pool
}

// registerHealthRoute registers the health check route.
func registerHealthRoute(r gin.IRouter, dbPool *pgxpool.Pool) {
	h := &healthHandler{dbPool: dbPool}
	r.GET("/health", h.health)
}

// health godoc
// @Summary Show the status of the server
// @Description Pings the database and reports liveness
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string "Database unreachable"
// @Router /health [get]
func (h *healthHandler) health(c *gin.Context) {
	if err := h.dbPool.Ping(c.Request.Context()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check DB ping failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
