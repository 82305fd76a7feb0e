package handlers

import (
	"net/http"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/errors"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget CRUD and the monthly overview
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	auditService  services.AuditServiceInterface
	now           func() time.Time
}

func NewBudgetHandler(
	budgetService services.BudgetServiceInterface,
	auditService services.AuditServiceInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		auditService:  auditService,
		now:           time.Now,
	}
}

// CreateBudget
// @Summary Create a budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} models.Budget
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or BUDGET_002"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.CreateBudget(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err, nil, errors.BudgetNotFound, errors.BudgetValidationFailed)
	}

	recordChange(c, h.auditService, userID, models.AuditActionCreate, models.AuditResourceBudget, budget.ID.String(), map[string]interface{}{
		"category": budget.Category,
		"amount":   budget.Amount.StringFixed(2),
	})

	return c.JSON(http.StatusCreated, budget)
}

// ListBudgets
// @Summary List budgets
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param status query string false "ACTIVE, PAUSED or ARCHIVED"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 400 {object} errors.ErrorResponse "BUDGET_003"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgets, err := h.budgetService.ListBudgets(c.Request().Context(), userID, c.QueryParam("status"))
	if err != nil {
		return sendServiceError(c, err, nil, errors.BudgetNotFound, errors.BudgetInvalidStatus)
	}

	return c.JSON(http.StatusOK, dto.ListBudgetsResponse{
		Budgets: budgets,
		Count:   len(budgets),
	})
}

// GetBudget
// @Summary Get budget by ID
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} models.Budget
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001"
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.GetBudget(c.Request().Context(), userID, budgetID)
	if err != nil {
		return sendServiceError(c, err, repositories.ErrBudgetNotFound, errors.BudgetNotFound, errors.BudgetValidationFailed)
	}

	return c.JSON(http.StatusOK, budget)
}

// UpdateBudget
// @Summary Update budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.UpdateBudgetRequest true "Fields to change"
// @Success 200 {object} models.Budget
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.UpdateBudget(c.Request().Context(), userID, budgetID, &req)
	if err != nil {
		return sendServiceError(c, err, repositories.ErrBudgetNotFound, errors.BudgetNotFound, errors.BudgetValidationFailed)
	}

	recordChange(c, h.auditService, userID, models.AuditActionUpdate, models.AuditResourceBudget, budget.ID.String(), nil)

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget
// @Summary Delete budget
// @Tags Budgets
// @Security BearerAuth
// @Param id path string true "Budget ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), userID, budgetID); err != nil {
		return sendServiceError(c, err, repositories.ErrBudgetNotFound, errors.BudgetNotFound, errors.BudgetValidationFailed)
	}

	recordChange(c, h.auditService, userID, models.AuditActionDelete, models.AuditResourceBudget, budgetID.String(), nil)

	return c.NoContent(http.StatusNoContent)
}

// GetOverview compares active budgets with the month's spend
// @Summary Budget overview
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param month query string false "Month (YYYY-MM), default current month"
// @Param startDate query string false "Overrides the month start (YYYY-MM-DD)"
// @Param endDate query string false "Overrides the month end (YYYY-MM-DD)"
// @Success 200 {array} models.BudgetOverviewItem
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /budgets/overview [get]
func (h *BudgetHandler) GetOverview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, err := parsePeriod(c, h.now())
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	items, err := h.budgetService.GetOverview(c.Request().Context(), userID, period)
	if err != nil {
		return sendServiceError(c, err, nil, errors.BudgetNotFound, errors.BudgetValidationFailed)
	}

	return c.JSON(http.StatusOK, items)
}
