package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/config"
)

func SetupMiddlewares(app *fiber.App, cfg config.Config, log *zap.Logger) {
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	app.Use(PerformanceLogger(log, "/api/surveys", "/public"))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public fiber.Router
	API    fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	// Grupo público (sem autenticação): envio de respostas pelos links
	public := app.Group("/public")

	// Grupo autenticado do painel
	api := app.Group("/api")
	api.Use(authMiddleware)

	return RouteGroups{
		Public: public,
		API:    api,
	}
}
