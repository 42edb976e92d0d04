package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/middleware"
	"github.com/forensilink/backend/internal/store"
)

// CreateConnectionHandler adds a connection to a case. Source and target
// are taken as given; they are not resolved against the case's entities.
func CreateConnectionHandler(c echo.Context) error {
	type createConnectionBody struct {
		CaseID    string         `param:"id" validate:"required"`
		ID        string         `json:"id"`
		Source    string         `json:"source"`
		Target    string         `json:"target"`
		Type      string         `json:"type"`
		Weight    *int           `json:"weight"`
		Data      map[string]any `json:"data"`
		Timestamp string         `json:"timestamp"`
	}

	type createConnectionResponse struct {
		Message    string            `json:"message"`
		Connection *store.Connection `json:"connection,omitempty"`
	}

	body := new(createConnectionBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, createConnectionResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, createConnectionResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	created, err := app.Connections.CreateConnection(ctx, body.CaseID, store.ConnectionInput{
		ID:        body.ID,
		Source:    body.Source,
		Target:    body.Target,
		Type:      body.Type,
		Weight:    body.Weight,
		Data:      body.Data,
		Timestamp: body.Timestamp,
	})
	if err != nil {
		return storeError(c, err)
	}
	app.Graph.Invalidate(ctx, body.CaseID)

	return c.JSON(http.StatusCreated, createConnectionResponse{
		Message:    "Connection created successfully",
		Connection: created,
	})
}
