package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"fire-tracker/internal/errors"
	"fire-tracker/internal/finance"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// FireHandler serves FIRE targets and progress
type FireHandler struct {
	fireService services.FireServiceInterface
}

func NewFireHandler(fireService services.FireServiceInterface) *FireHandler {
	return &FireHandler{fireService: fireService}
}

// GetProgress
// @Summary FIRE progress
// @Description FIRE, Coast FIRE and Barista FIRE targets with progress from the latest net worth
// @Tags FIRE
// @Security BearerAuth
// @Produce json
// @Param partTimeIncome query number false "Overrides the profile part-time income"
// @Success 200 {object} models.FireProgress
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 or PROFILE_002"
// @Failure 422 {object} errors.ErrorResponse "FIRE_001"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /fire/progress [get]
func (h *FireHandler) GetProgress(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	partTimeIncome, err := parseDecimalParam(c, "partTimeIncome")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	progress, err := h.fireService.GetProgress(c.Request().Context(), userID, partTimeIncome)
	if err != nil {
		switch {
		case stderrors.Is(err, finance.ErrUndefinedTarget):
			return SendError(c, errors.FireUndefinedTarget, errors.WithDetails(err.Error()))
		case stderrors.Is(err, services.ErrInvalidFireParameters):
			return SendError(c, errors.ProfileInvalidParameter, errors.WithDetails(strings.ReplaceAll(err.Error(), "\n", ": ")))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, progress)
}
