package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
	"github.com/forensilink/backend/internal/store"
)

type caseFilterParams struct {
	Status    string `query:"status"`
	CrimeType string `query:"crime_type"`
	OfficerID string `query:"officer_id"`
	Search    string `query:"search"`
}

func (p caseFilterParams) filter() store.CaseFilter {
	return store.CaseFilter{
		Status:    p.Status,
		CrimeType: p.CrimeType,
		OfficerID: p.OfficerID,
		Search:    p.Search,
	}
}

// GetCasesHandler lists cases, optionally narrowed by the same criteria
// the search route takes.
func GetCasesHandler(c echo.Context) error {
	params := new(caseFilterParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	cases := c.(*middleware.AppContext).App.Cases

	found, err := cases.ListCases(ctx, params.filter())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// SearchCasesHandler filters cases by status, crime type, officer and
// title substring; all supplied criteria must match.
func SearchCasesHandler(c echo.Context) error {
	params := new(caseFilterParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	cases := c.(*middleware.AppContext).App.Cases

	found, err := cases.ListCases(ctx, params.filter())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// GetCaseHandler returns a case together with its entities and connections.
func GetCaseHandler(c echo.Context) error {
	type getCaseParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getCaseResponse struct {
		Case        *store.Case        `json:"case"`
		Entities    []store.Entity     `json:"entities"`
		Connections []store.Connection `json:"connections"`
	}

	params := new(getCaseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	found, err := app.Cases.GetCase(ctx, params.ID)
	if err != nil {
		return storeError(c, err)
	}
	entities, err := app.Entities.ListEntitiesByCase(ctx, params.ID)
	if err != nil {
		return storeError(c, err)
	}
	connections, err := app.Connections.ListConnectionsByCase(ctx, params.ID)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, getCaseResponse{
		Case:        found,
		Entities:    entities,
		Connections: connections,
	})
}
