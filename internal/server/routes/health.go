package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func HealthHandler(c echo.Context) error {
	type healthResponse struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "Forensi-Link API is running",
	})
}
