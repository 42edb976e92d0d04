package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
)

// GetCaseGraphHandler returns the assembled node/edge view of a case.
func GetCaseGraphHandler(c echo.Context) error {
	type getGraphParams struct {
		CaseID string `param:"id" validate:"required"`
	}

	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	assembled, err := app.Graph.Assemble(ctx, params.CaseID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, assembled)
}
