package handlers

import (
	"net/http"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/errors"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	auditService       services.AuditServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	auditService services.AuditServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		auditService:       auditService,
	}
}

// CreateTransaction records an income or expense
// @Summary Record a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or TRANSACTION_003"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err, nil, errors.TransactionNotFound, errors.TransactionValidationFailed)
	}

	recordChange(c, h.auditService, userID, models.AuditActionCreate, models.AuditResourceTransaction, transaction.ID.String(), map[string]interface{}{
		"type":   transaction.Type,
		"amount": transaction.Amount.StringFixed(2),
	})

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// ListTransactions returns a page of the caller's transactions, newest first
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD), inclusive"
// @Param type query string false "INCOME or EXPENSE"
// @Param category query string false "Category name"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or VALIDATION_007"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	filters.UserID = userID

	transactions, total, err := h.transactionService.ListTransactions(c.Request().Context(), filters)
	if err != nil {
		return sendServiceError(c, err, nil, errors.TransactionNotFound, errors.ValidationGeneral)
	}

	offset, limit := services.NormalizePage(filters.Offset, filters.Limit)
	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(transactions, total, offset, limit))
}

// parseTransactionFilters parses the list query string
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	start, err := parseDateParam(c, "startDate", false)
	if err != nil {
		return filters, err
	}
	end, err := parseDateParam(c, "endDate", true)
	if err != nil {
		return filters, err
	}
	filters.StartDate = start
	filters.EndDate = end

	filters.Type = c.QueryParam("type")
	filters.Category = c.QueryParam("category")

	if filters.Offset, err = getIntParam(c, "offset", 0); err != nil {
		return filters, err
	}
	if filters.Limit, err = getIntParam(c, "limit", services.DefaultPageLimit); err != nil {
		return filters, err
	}

	return filters, nil
}

// GetTransaction returns one of the caller's transactions
// @Summary Get transaction by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.GetTransaction(c.Request().Context(), userID, transactionID)
	if err != nil {
		return sendServiceError(c, err, repositories.ErrTransactionNotFound, errors.TransactionNotFound, errors.TransactionValidationFailed)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction changes the provided fields of a transaction
// @Summary Update transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 or TRANSACTION_003"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request().Context(), userID, transactionID, &req)
	if err != nil {
		return sendServiceError(c, err, repositories.ErrTransactionNotFound, errors.TransactionNotFound, errors.TransactionValidationFailed)
	}

	recordChange(c, h.auditService, userID, models.AuditActionUpdate, models.AuditResourceTransaction, transaction.ID.String(), nil)

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction removes one of the caller's transactions
// @Summary Delete transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID (UUID)"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), userID, transactionID); err != nil {
		return sendServiceError(c, err, repositories.ErrTransactionNotFound, errors.TransactionNotFound, errors.TransactionValidationFailed)
	}

	recordChange(c, h.auditService, userID, models.AuditActionDelete, models.AuditResourceTransaction, transactionID.String(), nil)

	return c.NoContent(http.StatusNoContent)
}
