package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/graph"
	"github.com/forensilink/backend/internal/store"
)

// App carries the constructed store and graph clients. Handlers reach them
// through the AppContext instead of any package-level state.
type App struct {
	Cases       store.CaseStore
	Entities    store.EntityStore
	Connections store.ConnectionStore
	Graph       graph.Provider
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
