package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/11930018-user/Backend/internal/config"
	"github.com/11930018-user/Backend/internal/repository"
	"github.com/11930018-user/Backend/internal/utils"
)

// AuthHandler implements the employee login endpoint. The token it issues
// is opaque to clients; no route on this API requires it, so there is no
// session state to manage beyond the token's own expiry.
type AuthHandler struct {
	Cfg       config.Config
	Employees *repository.EmployeeRepo
}

// NewAuthHandler constructs an AuthHandler with the provided repository.
func NewAuthHandler(cfg config.Config, employees *repository.EmployeeRepo) *AuthHandler {
	if employees == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Employees: employees}
}

type loginReq struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

type loginEmployee struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmployeeCode string `json:"employee_code"`
}

// Login handles POST /api/auth/login. It verifies the employee code and
// bcrypt password and returns a signed access token plus the employee's
// public fields. Unknown codes and wrong passwords both yield 401 so the
// two cases cannot be told apart.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	req.EmployeeCode = strings.TrimSpace(req.EmployeeCode)
	if req.EmployeeCode == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "employee_code and password required"})
	}

	emp, err := h.Employees.GetByCode(c.Request().Context(), req.EmployeeCode)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	if !utils.VerifyPassword(emp.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, emp.ID, emp.EmployeeCode, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": tok.Token,
		"employee": loginEmployee{
			ID:           emp.ID,
			FirstName:    emp.FirstName,
			LastName:     emp.LastName,
			EmployeeCode: emp.EmployeeCode,
		},
	})
}
