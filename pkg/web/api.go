package web

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/orchahq/nodekit/pkg/registry"
	"github.com/orchahq/nodekit/pkg/resolve"
)

// API wires the registry and the resolution engine into an HTTP server.
type API struct {
	logger   *slog.Logger
	registry *registry.Registry
	engine   *resolve.Engine
	validate *validator.Validate
}

func NewAPI(logger *slog.Logger, registry *registry.Registry, engine *resolve.Engine) *API {
	return &API{
		logger:   logger,
		registry: registry,
		engine:   engine,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	handlers := NewAPIHandlers(a.logger, a.registry, a.engine, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Nodekit API")
	})

	n := app.Group("/nodes")
	n.Get("/", handlers.ListNodes)
	n.Get("/:name", handlers.GetNode)
	n.Post("/:name/resolve", handlers.ResolveNode)
	n.Post("/:name/compile", handlers.CompileNode)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	return app.Listen(":" + strconv.Itoa(port))
}
