package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
	"github.com/forensilink/backend/internal/store"
)

// CreateEntityHandler adds an entity to a case.
func CreateEntityHandler(c echo.Context) error {
	type createEntityBody struct {
		CaseID    string         `param:"id" validate:"required"`
		ID        string         `json:"id"`
		Label     string         `json:"label"`
		Type      string         `json:"type"`
		Size      *int           `json:"size"`
		Icon      string         `json:"icon"`
		Metadata  map[string]any `json:"metadata"`
		Timestamp string         `json:"timestamp"`
	}

	type createEntityResponse struct {
		Message string        `json:"message"`
		Entity  *store.Entity `json:"entity,omitempty"`
	}

	body := new(createEntityBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, createEntityResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, createEntityResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	created, err := app.Entities.CreateEntity(ctx, body.CaseID, store.EntityInput{
		ID:        body.ID,
		Label:     body.Label,
		Type:      body.Type,
		Size:      body.Size,
		Icon:      body.Icon,
		Metadata:  body.Metadata,
		Timestamp: body.Timestamp,
	})
	if err != nil {
		return storeError(c, err)
	}
	app.Graph.Invalidate(ctx, body.CaseID)

	return c.JSON(http.StatusCreated, createEntityResponse{
		Message: "Entity created successfully",
		Entity:  created,
	})
}
