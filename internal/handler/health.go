package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health verifies the service is up.  Returns plain "ok" with 200.
func (h *PageHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
