package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
)

// DeleteCaseHandler deletes a case and everything it owns.
func DeleteCaseHandler(c echo.Context) error {
	type deleteCaseParams struct {
		ID string `param:"id" validate:"required"`
	}

	params := new(deleteCaseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	if err := app.Cases.DeleteCase(ctx, params.ID); err != nil {
		return storeError(c, err)
	}
	app.Graph.Invalidate(ctx, params.ID)

	return c.JSON(http.StatusOK, messageResponse{Message: "Case deleted successfully"})
}
