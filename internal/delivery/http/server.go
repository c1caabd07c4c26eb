package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/citystrata-service/internal/config"
	"github.com/citystrata-service/internal/delivery/http/handler"
	"github.com/citystrata-service/internal/delivery/http/middleware"
)

// HealthChecker is implemented by the store and cache handles.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	resourceHandler   *handler.ResourceHandler
	nearbyHandler     *handler.NearbyHandler
	evacuationHandler *handler.EvacuationHandler

	// Health probes
	store HealthChecker
	cache HealthChecker
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	resourceHandler *handler.ResourceHandler,
	nearbyHandler *handler.NearbyHandler,
	evacuationHandler *handler.EvacuationHandler,
	store HealthChecker,
	cache HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "CityStrata API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		resourceHandler:   resourceHandler,
		nearbyHandler:     nearbyHandler,
		evacuationHandler: evacuationHandler,
		store:             store,
		cache:             cache,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.health)

	// Resource routes. The static facility-types route must be registered
	// before the parameterized lookup so it is matched first.
	api.Get("/resources/facility/types", s.resourceHandler.GetFacilityTypes)
	api.Get("/resources/:kind", s.resourceHandler.GetCollection)
	api.Get("/resources/:kind/:key", s.resourceHandler.GetResource)

	// Proximity search
	api.Get("/nearby", s.nearbyHandler.Search)

	// Evacuation analysis
	api.Post("/evacuation/analyze", s.evacuationHandler.Analyze)
	api.Get("/areas/:code/summary", s.evacuationHandler.AreaSummary)
}

func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	checks := fiber.Map{"database": "ok", "cache": "ok"}

	if err := s.store.Health(ctx); err != nil {
		status = "unhealthy"
		code = fiber.StatusServiceUnavailable
		checks["database"] = err.Error()
	}
	if err := s.cache.Health(ctx); err != nil {
		status = "unhealthy"
		code = fiber.StatusServiceUnavailable
		checks["cache"] = err.Error()
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
