package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/application/usecases"
	"github.com/PavaniTiago/socioteam-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/socioteam-api/internal/utils"
)

type createTeamRequest struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=500"`
	Members     []string `json:"members" validate:"required,min=1,unique,dive,uuid"`
}

type replaceMembersRequest struct {
	Members []string `json:"members" validate:"required,unique,dive,uuid"`
}

type scoreTeamRequest struct {
	SurveyID string   `json:"survey_id" validate:"required,uuid"`
	Members  []string `json:"members" validate:"required,min=1,dive,uuid"`
}

type autoAssignRequest struct {
	SurveyID   string   `json:"survey_id" validate:"required,uuid"`
	TeamCount  int      `json:"team_count" validate:"gte=1,lte=50"`
	Candidates []string `json:"candidates" validate:"omitempty,dive,uuid"`
}

// TeamHandler lida com as equipes e o cálculo de coesão
type TeamHandler struct {
	teamUseCase usecases.TeamUseCase
	log         *zap.Logger
}

// NewTeamHandler cria uma nova instância de TeamHandler
func NewTeamHandler(teamUseCase usecases.TeamUseCase, log *zap.Logger) *TeamHandler {
	return &TeamHandler{teamUseCase: teamUseCase, log: log}
}

// parseBody lê e valida o corpo JSON. Retorna false quando a resposta de erro já foi enviada.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, badRequest(c, "invalid request body")
	}
	if err := utils.ValidateStruct(out); err != nil {
		return false, badRequest(c, err.Error())
	}
	return true, nil
}

// GetTeams lista as equipes com a coesão calculada para a pesquisa informada
// @Summary Lista equipes
// @Tags teams
// @Produce json
// @Param survey_id query string true "ID da pesquisa usada no cálculo de coesão"
// @Success 200 {object} map[string]interface{}
// @Router /api/teams [get]
func (h *TeamHandler) GetTeams(c *fiber.Ctx) error {
	surveyID := c.Query("survey_id")
	if _, err := uuid.Parse(surveyID); err != nil {
		return badRequest(c, "survey_id must be a valid uuid")
	}

	teams, err := h.teamUseCase.ListTeams(c.UserContext(), surveyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"data": teams})
}

// CreateTeam cria uma equipe
func (h *TeamHandler) CreateTeam(c *fiber.Ctx) error {
	var req createTeamRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	team, err := h.teamUseCase.CreateTeam(c.UserContext(), usecases.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
		CreatedBy:   middleware.UserID(c),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

// ReplaceMembers substitui os membros de uma equipe
func (h *TeamHandler) ReplaceMembers(c *fiber.Ctx) error {
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid team id")
	}
	var req replaceMembersRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	team, err := h.teamUseCase.ReplaceMembers(c.UserContext(), teamID, req.Members)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(team)
}

// ScoreTeam calcula a coesão de um conjunto de colaboradores
func (h *TeamHandler) ScoreTeam(c *fiber.Ctx) error {
	var req scoreTeamRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	score, err := h.teamUseCase.ScoreMembers(c.UserContext(), req.SurveyID, req.Members)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"members":  req.Members,
		"cohesion": score,
	})
}

// AutoAssign sugere a divisão dos colaboradores em equipes
func (h *TeamHandler) AutoAssign(c *fiber.Ctx) error {
	var req autoAssignRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	teams, err := h.teamUseCase.AutoAssign(c.UserContext(), req.SurveyID, req.Candidates, req.TeamCount)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"data": teams})
}
