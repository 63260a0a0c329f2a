package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/application/usecases"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// SociometryHandler expõe o grafo e as análises de uma pesquisa
type SociometryHandler struct {
	sociometryUseCase usecases.SociometryUseCase
	log               *zap.Logger
}

// NewSociometryHandler cria uma nova instância de SociometryHandler
func NewSociometryHandler(sociometryUseCase usecases.SociometryUseCase, log *zap.Logger) *SociometryHandler {
	return &SociometryHandler{sociometryUseCase: sociometryUseCase, log: log}
}

// GetGraph retorna o sociograma da pesquisa
// @Summary Retorna o grafo sociométrico
// @Tags sociometry
// @Produce json
// @Param id path string true "ID da pesquisa"
// @Param type query string false "Tipo de relação (all, positive, negative)"
// @Param min_strength query number false "Força mínima da relação (0 a 1)"
// @Param department query string false "Departamento"
// @Success 200 {object} sociometry.Graph
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/surveys/{id}/graph [get]
func (h *SociometryHandler) GetGraph(c *fiber.Ctx) error {
	surveyID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid survey id")
	}

	filter := sociometry.GraphFilter{Department: c.Query("department")}
	switch t := c.Query("type", "all"); t {
	case "all":
	case string(sociometry.Positive), string(sociometry.Negative):
		filter.Type = sociometry.Polarity(t)
	default:
		return badRequest(c, "type must be one of: all, positive, negative")
	}

	minStrength, err := queryFloat(c, "min_strength", 0)
	if err != nil {
		return badRequest(c, err.Error())
	}
	filter.MinStrength = minStrength

	graph, err := h.sociometryUseCase.GetGraph(c.UserContext(), surveyID, filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(graph)
}

// GetStars retorna os colaboradores mais escolhidos
func (h *SociometryHandler) GetStars(c *fiber.Ctx) error {
	surveyID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid survey id")
	}
	n, err := queryInt(c, "n", 5, 1, 100)
	if err != nil {
		return badRequest(c, err.Error())
	}

	stars, err := h.sociometryUseCase.GetStars(c.UserContext(), surveyID, n)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"data": stars})
}

// GetIsolated retorna os colaboradores menos escolhidos
func (h *SociometryHandler) GetIsolated(c *fiber.Ctx) error {
	surveyID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid survey id")
	}
	n, err := queryInt(c, "n", 3, 1, 100)
	if err != nil {
		return badRequest(c, err.Error())
	}

	isolated, err := h.sociometryUseCase.GetIsolated(c.UserContext(), surveyID, n)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"data": isolated})
}

// GetConflicts retorna os pares com rejeição
func (h *SociometryHandler) GetConflicts(c *fiber.Ctx) error {
	surveyID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid survey id")
	}

	conflicts, err := h.sociometryUseCase.GetConflicts(c.UserContext(), surveyID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	mutual := 0
	for _, p := range conflicts {
		if p.Mutual {
			mutual++
		}
	}
	return c.JSON(fiber.Map{
		"data":   conflicts,
		"total":  len(conflicts),
		"mutual": mutual,
	})
}

func (h *SociometryHandler) GetReferences(c *fiber.Ctx) error {
	surveyID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid survey id")
	}
	n, err := queryInt(c, "n", 0, 0, 1000)
	if err != nil {
		return badRequest(c, err.Error())
	}

	refs, err := h.sociometryUseCase.GetReferences(c.UserContext(), surveyID, n)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"data": refs})
}
