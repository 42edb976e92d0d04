package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forensilink/backend/internal/store"
	"github.com/forensilink/backend/pkg/logger"
)

type messageResponse struct {
	Message string `json:"message"`
}

// storeError maps the store taxonomy onto HTTP statuses. Anything outside
// the taxonomy is an internal fault and logged as such.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
	case errors.Is(err, store.ErrConflict):
		return c.JSON(http.StatusConflict, messageResponse{Message: err.Error()})
	}
	logger.Error("Store operation failed", "err", err)
	return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
}
