package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root answers GET / with a short liveness message so that a browser hit
// on the bare host confirms the backend is up.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "POS backend server is running")
}

// Health is the machine-facing health check used by load balancers and
// monitoring systems. It returns a plain "ok" with HTTP 200.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
