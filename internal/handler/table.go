package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/11930018-user/Backend/internal/model"
	"github.com/11930018-user/Backend/internal/repository"
)

// TableHandler serves the restaurant table CRUD endpoints. Table status
// can be set here for manual administration, but the order endpoints are
// the only flow that drives the available/reserved transitions.
type TableHandler struct {
	Tables *repository.TableRepo
}

// NewTableHandler constructs a TableHandler.
func NewTableHandler(tables *repository.TableRepo) *TableHandler {
	if tables == nil {
		panic("nil repository passed to NewTableHandler")
	}
	return &TableHandler{Tables: tables}
}

type tableReq struct {
	TableNumber uint32  `json:"table_number"`
	Capacity    uint32  `json:"capacity"`
	Status      string  `json:"status"`
	Zone        *string `json:"zone"`
}

// List handles GET /api/restaurant_tables.
func (h *TableHandler) List(c echo.Context) error {
	tables, err := h.Tables.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, tables)
}

// Create handles POST /api/restaurant_tables. Status defaults to
// "available" when omitted.
func (h *TableHandler) Create(c echo.Context) error {
	var req tableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.TableNumber == 0 || req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "table_number and capacity are required"})
	}
	if req.Status == "" {
		req.Status = model.TableStatusAvailable
	}
	t := model.RestaurantTable{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Zone:        req.Zone,
	}
	if err := h.Tables.Create(c.Request().Context(), &t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusCreated, t)
}

// Update handles PUT /api/restaurant_tables/:id.
func (h *TableHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid table id"})
	}
	var req tableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.TableNumber == 0 || req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "table_number and capacity are required"})
	}
	t := model.RestaurantTable{
		ID:          id,
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Zone:        req.Zone,
	}
	if err := h.Tables.Update(c.Request().Context(), &t); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/restaurant_tables/:id.
func (h *TableHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid table id"})
	}
	if err := h.Tables.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Table deleted"})
}
