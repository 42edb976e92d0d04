package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/forensilink/backend/internal/graph"
	"github.com/forensilink/backend/internal/graph/cached"
	mid "github.com/forensilink/backend/internal/server/middleware"
	"github.com/forensilink/backend/internal/store"
	"github.com/forensilink/backend/internal/store/memory"
	"github.com/forensilink/backend/internal/store/postgres"
	"github.com/forensilink/backend/internal/util"
	"github.com/forensilink/backend/pkg/logger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db store.Store
	if dsn := util.GetEnv("DATABASE_URL"); dsn != "" {
		client, err := postgres.New(ctx, dsn)
		if err != nil {
			logger.Fatal("Failed to connect to database", "err", err)
		}
		defer client.Close()
		db = client
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store; data will not survive a restart")
		db = memory.NewStore()
	}

	var graphClient graph.Provider = graph.NewAssembler(db, db, db)
	if redisURL := util.GetEnv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.Fatal("Failed to parse REDIS_URL", "err", err)
		}
		graphClient = cached.New(graphClient, redis.NewClient(opts))
		logger.Info("Graph cache enabled")
	}

	app := &mid.App{
		Cases:       db,
		Entities:    db,
		Connections: db,
		Graph:       graphClient,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
