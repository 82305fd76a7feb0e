package handlers

import (
	"net/http"
	"time"

	"fire-tracker/internal/errors"
	"fire-tracker/internal/models"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the period summary and category breakdown
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	now              func() time.Time
}

func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		now:              time.Now,
	}
}

// GetSummary
// @Summary Dashboard summary
// @Description Income, expenses, net savings and savings rate for a month or date range
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month (YYYY-MM), default current month"
// @Param startDate query string false "Overrides the month start (YYYY-MM-DD)"
// @Param endDate query string false "Overrides the month end (YYYY-MM-DD)"
// @Success 200 {object} models.DashboardSummary
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, err := parsePeriod(c, h.now())
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	summary, err := h.dashboardService.GetSummary(c.Request().Context(), userID, period)
	if err != nil {
		return sendServiceError(c, err, nil, errors.TransactionNotFound, errors.ValidationGeneral)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetCategorySpending
// @Summary Spending by category
// @Description Totals per category, largest first, each with a display color
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month (YYYY-MM), default current month"
// @Param startDate query string false "Overrides the month start (YYYY-MM-DD)"
// @Param endDate query string false "Overrides the month end (YYYY-MM-DD)"
// @Param type query string false "EXPENSE (default) or INCOME"
// @Success 200 {array} models.CategorySpendingEntry
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 or TRANSACTION_004"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /dashboard/category-spending [get]
func (h *DashboardHandler) GetCategorySpending(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, err := parsePeriod(c, h.now())
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	transactionType := c.QueryParam("type")
	if transactionType == "" {
		transactionType = models.TransactionTypeExpense
	}

	entries, err := h.dashboardService.GetCategorySpending(c.Request().Context(), userID, period, transactionType)
	if err != nil {
		return sendServiceError(c, err, nil, errors.TransactionNotFound, errors.TransactionInvalidType)
	}

	return c.JSON(http.StatusOK, entries)
}
