package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
)

// GetCaseConnectionsHandler lists all connections of a case.
func GetCaseConnectionsHandler(c echo.Context) error {
	type getConnectionsParams struct {
		CaseID string `param:"id" validate:"required"`
	}

	params := new(getConnectionsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	connections := c.(*middleware.AppContext).App.Connections

	found, err := connections.ListConnectionsByCase(ctx, params.CaseID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}
