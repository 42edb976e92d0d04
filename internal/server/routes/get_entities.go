package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
)

// GetCaseEntitiesHandler lists all entities of a case. Order is whatever
// the store returns.
func GetCaseEntitiesHandler(c echo.Context) error {
	type getEntitiesParams struct {
		CaseID string `param:"id" validate:"required"`
	}

	params := new(getEntitiesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	entities := c.(*middleware.AppContext).App.Entities

	found, err := entities.ListEntitiesByCase(ctx, params.CaseID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}
