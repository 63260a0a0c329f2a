package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/application/usecases"
)

type DashboardHandler struct {
	dashboardUseCase usecases.DashboardUseCase
	log              *zap.Logger
}

func NewDashboardHandler(dashboardUseCase usecases.DashboardUseCase, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase, log: log}
}

// GetDashboard retorna os indicadores da pesquisa
// @Summary Dashboard da pesquisa
// @Tags dashboard
// @Produce json
// @Param id path string true "ID da pesquisa"
// @Param days query int false "Dias da série diária de respostas" default(30)
// @Success 200 {object} usecases.DashboardResult
// @Router /api/surveys/{id}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	surveyID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid survey id")
	}
	days, err := queryInt(c, "days", 30, 1, 365)
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.dashboardUseCase.GetDashboard(c.UserContext(), surveyID, days)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(result)
}
