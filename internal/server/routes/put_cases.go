package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
	"github.com/forensilink/backend/internal/store"
)

// UpdateCaseHandler merges the supplied fields into an existing case.
// Omitted and null fields are left as they are.
func UpdateCaseHandler(c echo.Context) error {
	type updateCaseBody struct {
		ID          string  `param:"id" validate:"required"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		CrimeType   *string `json:"crime_type"`
		OfficerID   *string `json:"officer_id"`
	}

	type updateCaseResponse struct {
		Message string      `json:"message"`
		Case    *store.Case `json:"case,omitempty"`
	}

	body := new(updateCaseBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, updateCaseResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, updateCaseResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	cases := c.(*middleware.AppContext).App.Cases

	updated, err := cases.UpdateCase(ctx, body.ID, store.CasePatch{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		CrimeType:   body.CrimeType,
		OfficerID:   body.OfficerID,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, updateCaseResponse{
		Message: "Case updated successfully",
		Case:    updated,
	})
}
