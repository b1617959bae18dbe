package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/11930018-user/Backend/internal/config"
	"github.com/11930018-user/Backend/internal/model"
	"github.com/11930018-user/Backend/internal/repository"
	"github.com/11930018-user/Backend/internal/utils"
)

// EmployeeHandler serves the employee pass-through endpoints. Creation
// hashes the supplied password with bcrypt before it reaches storage.
type EmployeeHandler struct {
	Cfg       config.Config
	Employees *repository.EmployeeRepo
}

// NewEmployeeHandler constructs an EmployeeHandler.
func NewEmployeeHandler(cfg config.Config, employees *repository.EmployeeRepo) *EmployeeHandler {
	if employees == nil {
		panic("nil repository passed to NewEmployeeHandler")
	}
	return &EmployeeHandler{Cfg: cfg, Employees: employees}
}

// List handles GET /api/employees. Password hashes are excluded from the
// JSON by the model.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.Employees.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, employees)
}

type createEmployeeReq struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.FirstName == "" || req.LastName == "" || req.EmployeeCode == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "first_name, last_name, employee_code, password required",
		})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to hash password"})
	}
	e := model.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmployeeCode: req.EmployeeCode,
		PasswordHash: hash,
	}
	if err := h.Employees.Create(c.Request().Context(), &e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":            e.ID,
		"first_name":    e.FirstName,
		"last_name":     e.LastName,
		"employee_code": e.EmployeeCode,
	})
}
