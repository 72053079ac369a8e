package handler

import (
	"github.com/labstack/echo/v4"

	"rms/internal/model"
	"rms/internal/service"
)

// TableHandler handles table endpoints.
type TableHandler struct {
	tables service.ChildService[model.Table]
}

// NewTableHandler creates a new table handler.
func NewTableHandler(tables service.ChildService[model.Table]) *TableHandler {
	return &TableHandler{tables: tables}
}

// CreateTableRequest represents a new table. Status defaults to available.
type CreateTableRequest struct {
	Num    int               `json:"num" validate:"required,min=1"`
	Status model.TableStatus `json:"status" validate:"omitempty,oneof=available occupied reserved"`
}

// CreateTable godoc
// @Summary Add a table
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param restaurantId path string true "Restaurant ID"
// @Param request body CreateTableRequest true "Table"
// @Success 201 {object} model.Table
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/tables [post]
func (h *TableHandler) CreateTable(c echo.Context) error {
	var req CreateTableRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	status := req.Status
	if status == "" {
		status = model.TableStatusAvailable
	}

	return createChild(c, h.tables, &model.Table{Num: req.Num, Status: status})
}

// ListTables godoc
// @Summary List a restaurant's tables
// @Tags tables
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {array} model.Table
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/tables [get]
func (h *TableHandler) ListTables(c echo.Context) error {
	return listChildren(c, h.tables)
}
