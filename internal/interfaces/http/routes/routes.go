package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PavaniTiago/socioteam-api/internal/application/usecases"
	"github.com/PavaniTiago/socioteam-api/internal/config"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
	"github.com/PavaniTiago/socioteam-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/socioteam-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/socioteam-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/socioteam-api/internal/utils"
)

// Handlers agrupa os handlers registrados nas rotas
type Handlers struct {
	Employees  *handlers.EmployeeHandler
	Sociometry *handlers.SociometryHandler
	Teams      *handlers.TeamHandler
	Dashboard  *handlers.DashboardHandler
	Links      *handlers.SurveyLinkHandler
}

// NewHandlers monta repositórios, casos de uso e handlers a partir da conexão com o banco
func NewHandlers(db *gorm.DB, cfg config.Config, log *zap.Logger) Handlers {
	// Repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	surveyRepo := repositories.NewSurveyRepository(db)
	linkRepo := repositories.NewSurveyLinkRepository(db)
	teamRepo := repositories.NewTeamRepository(db)

	engine := sociometry.New(cfg.Engine)
	graphCache := cache.NewGraphCache(cfg.GraphCacheTTL)

	// Use Cases
	sociometryUseCase := usecases.NewSociometryUseCase(employeeRepo, surveyRepo, engine, graphCache, log)
	teamUseCase := usecases.NewTeamUseCase(teamRepo, employeeRepo, sociometryUseCase, engine, log)
	dashboardUseCase := usecases.NewDashboardUseCase(employeeRepo, surveyRepo, teamRepo, engine, utils.LoadLocation(cfg.Timezone), log)
	linkUseCase := usecases.NewSurveyLinkUseCase(employeeRepo, surveyRepo, linkRepo, sociometryUseCase, cfg.LinkTTL, log)
	employeeUseCase := usecases.NewEmployeeUseCase(employeeRepo)

	return Handlers{
		Employees:  handlers.NewEmployeeHandler(employeeUseCase, log),
		Sociometry: handlers.NewSociometryHandler(sociometryUseCase, log),
		Teams:      handlers.NewTeamHandler(teamUseCase, log),
		Dashboard:  handlers.NewDashboardHandler(dashboardUseCase, log),
		Links:      handlers.NewSurveyLinkHandler(linkUseCase, log),
	}
}

// SetupRoutes registra as rotas públicas e as rotas autenticadas do painel
func SetupRoutes(app *fiber.App, h Handlers, authMiddleware fiber.Handler) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(etag.New())

	app.Get("/health", handlers.Health)

	groups := middleware.SetupRouteGroups(app, authMiddleware)

	// Envio de respostas pelos links individuais
	groups.Public.Post("/links/:token/responses", h.Links.SubmitResponse)

	groups.API.Get("/employees", h.Employees.GetEmployees)

	surveys := groups.API.Group("/surveys/:id")
	surveys.Get("/graph", h.Sociometry.GetGraph)
	surveys.Get("/stars", h.Sociometry.GetStars)
	surveys.Get("/isolated", h.Sociometry.GetIsolated)
	surveys.Get("/conflicts", h.Sociometry.GetConflicts)
	surveys.Get("/references", h.Sociometry.GetReferences)
	surveys.Get("/dashboard", h.Dashboard.GetDashboard)
	surveys.Post("/links", h.Links.GenerateLinks)
	surveys.Get("/links", h.Links.GetLinks)

	teams := groups.API.Group("/teams")
	teams.Get("/", h.Teams.GetTeams)
	teams.Post("/", h.Teams.CreateTeam)
	teams.Post("/score", h.Teams.ScoreTeam)
	teams.Post("/auto-assign", h.Teams.AutoAssign)
	teams.Put("/:id/members", h.Teams.ReplaceMembers)
}
