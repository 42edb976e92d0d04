package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", routes.HealthHandler)

	// Case routes
	api.GET("/cases", routes.GetCasesHandler)
	api.POST("/cases", routes.CreateCaseHandler)
	api.GET("/cases/:id", routes.GetCaseHandler)
	api.PUT("/cases/:id", routes.UpdateCaseHandler)
	api.DELETE("/cases/:id", routes.DeleteCaseHandler)

	// Case sub-resource routes
	api.GET("/cases/:id/entities", routes.GetCaseEntitiesHandler)
	api.POST("/cases/:id/entities", routes.CreateEntityHandler)
	api.GET("/cases/:id/connections", routes.GetCaseConnectionsHandler)
	api.POST("/cases/:id/connections", routes.CreateConnectionHandler)
	api.GET("/cases/:id/graph", routes.GetCaseGraphHandler)

	// Case search route
	api.GET("/search/cases", routes.SearchCasesHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
