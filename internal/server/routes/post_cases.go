package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
	"github.com/forensilink/backend/internal/store"
)

// CreateCaseHandler creates a case under a client-supplied id.
func CreateCaseHandler(c echo.Context) error {
	type createCaseBody struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
		CrimeType   string `json:"crime_type"`
		OfficerID   string `json:"officer_id"`
	}

	type createCaseResponse struct {
		Message string      `json:"message"`
		Case    *store.Case `json:"case,omitempty"`
	}

	body := new(createCaseBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, createCaseResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	cases := c.(*middleware.AppContext).App.Cases

	created, err := cases.CreateCase(ctx, store.CaseInput{
		ID:          body.ID,
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		CrimeType:   body.CrimeType,
		OfficerID:   body.OfficerID,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(http.StatusCreated, createCaseResponse{
		Message: "Case created successfully",
		Case:    created,
	})
}
