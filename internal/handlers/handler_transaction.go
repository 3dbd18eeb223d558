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

// transactionHandler handles HTTP requests on the ledger's read facade.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", middleware.RequireEmployee(), h.listTransactions)
		txns.GET("/:txnID", middleware.RequireEmployee(), h.getTransaction)
		txns.GET("/:txnID/details", middleware.RequireEmployee(), h.getTransactionDetails)
		txns.GET("/tourist/:touristID", h.listTransactionsByTourist)
		txns.GET("/trip/:tripID", middleware.RequireEmployee(), h.listTransactionsByTrip)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves a page of transactions, newest first
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Employee role required"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.txnService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a transaction together with its detail lines
// @Tags transactions
// @Produce  json
// @Param   txnID path string true "Transaction ID"
// @Success 200 {object} domain.Transaction
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{txnID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID := c.Param("txnID")

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), txnID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, txn)
}

// getTransactionDetails godoc
// @Summary Get a transaction's details
// @Description Retrieves the detail lines of a transaction with trip info joined
// @Tags transactions
// @Produce  json
// @Param   txnID path string true "Transaction ID"
// @Success 200 {array} domain.TransactionDetail
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve details"
// @Security BearerAuth
// @Router /transactions/{txnID}/details [get]
func (h *transactionHandler) getTransactionDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnID := c.Param("txnID")

	details, err := h.txnService.GetTransactionDetails(c.Request.Context(), txnID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction details", slog.String("error", err.Error()), slog.String("transaction_id", txnID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve details"})
		}
		return
	}

	c.JSON(http.StatusOK, details)
}

// listTransactionsByTourist godoc
// @Summary List a tourist's transactions
// @Description Retrieves all transactions for a tourist; empty when the tourist is unknown
// @Tags transactions
// @Produce  json
// @Param   touristID path string true "Tourist ID"
// @Success 200 {array} domain.Transaction
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions/tourist/{touristID} [get]
func (h *transactionHandler) listTransactionsByTourist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	touristID := c.Param("touristID")

	txns, err := h.txnService.ListTransactionsByTourist(c.Request.Context(), touristID)
	if err != nil {
		logger.Error("Failed to list transactions by tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, txns)
}

// listTransactionsByTrip godoc
// @Summary List transactions for a trip
// @Description Retrieves transactions with at least one detail referencing the trip; empty when the trip is unknown
// @Tags transactions
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} domain.Transaction
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Employee role required"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions/trip/{tripID} [get]
func (h *transactionHandler) listTransactionsByTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	txns, err := h.txnService.ListTransactionsByTrip(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to list transactions by trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, txns)
}
