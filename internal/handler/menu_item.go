package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/11930018-user/Backend/internal/model"
	"github.com/11930018-user/Backend/internal/repository"
)

// MenuItemHandler serves the menu item CRUD endpoints. These are plain
// pass-throughs to storage; no transactional logic lives here.
type MenuItemHandler struct {
	Menu *repository.MenuItemRepo
}

// NewMenuItemHandler constructs a MenuItemHandler.
func NewMenuItemHandler(menu *repository.MenuItemRepo) *MenuItemHandler {
	if menu == nil {
		panic("nil repository passed to NewMenuItemHandler")
	}
	return &MenuItemHandler{Menu: menu}
}

type menuItemReq struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsActive    *bool           `json:"is_active"`
}

func (b menuItemReq) validate() string {
	if b.Name == "" || b.Category == "" || !b.Price.IsPositive() {
		return "name, price, category are required"
	}
	return ""
}

// List handles GET /api/menu_items, returning active items only.
func (h *MenuItemHandler) List(c echo.Context) error {
	items, err := h.Menu.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/menu_items. New items default to active.
func (h *MenuItemHandler) Create(c echo.Context) error {
	var req menuItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}
	m := model.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsActive:    true,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if err := h.Menu.Create(c.Request().Context(), &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /api/menu_items/:id.
func (h *MenuItemHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid menu item id"})
	}
	var req menuItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}
	m := model.MenuItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.Menu.Update(c.Request().Context(), &m); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/menu_items/:id.
func (h *MenuItemHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid menu item id"})
	}
	if err := h.Menu.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Menu item deleted"})
}
