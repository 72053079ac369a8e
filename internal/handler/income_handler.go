package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "rms/internal/errors"
	"rms/internal/model"
	"rms/internal/service"
)

// IncomeHandler handles income endpoints. Both routes are owner-only.
type IncomeHandler struct {
	incomes service.ChildService[model.Income]
}

// NewIncomeHandler creates a new income handler.
func NewIncomeHandler(incomes service.ChildService[model.Income]) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

// CreateIncomeRequest represents a recorded income.
type CreateIncomeRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number"`
}

// CreateIncome godoc
// @Summary Record income
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param restaurantId path string true "Restaurant ID"
// @Param request body CreateIncomeRequest true "Income"
// @Success 201 {object} model.Income
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/incomes [post]
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	var req CreateIncomeRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if !req.Amount.IsPositive() {
		return fail(c, apperrors.InvalidField("amount", "must be greater than 0"))
	}

	return createChild(c, h.incomes, &model.Income{Amount: *req.Amount})
}

// ListIncomes godoc
// @Summary List a restaurant's incomes
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {array} model.Income
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/incomes [get]
func (h *IncomeHandler) ListIncomes(c echo.Context) error {
	return listChildren(c, h.incomes)
}
