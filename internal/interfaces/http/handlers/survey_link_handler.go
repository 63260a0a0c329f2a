package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/application/usecases"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

type answerRequest struct {
	QuestionID string   `json:"questionId" validate:"required,uuid"`
	Choices    []string `json:"choices" validate:"dive,uuid"`
}

type submitResponseRequest struct {
	Responses []answerRequest `json:"responses" validate:"required,min=1,dive"`
}

// SurveyLinkHandler lida com os links de pesquisa e o envio público de respostas
type SurveyLinkHandler struct {
	linkUseCase usecases.SurveyLinkUseCase
	log         *zap.Logger
}

// NewSurveyLinkHandler cria uma nova instância de SurveyLinkHandler
func NewSurveyLinkHandler(linkUseCase usecases.SurveyLinkUseCase, log *zap.Logger) *SurveyLinkHandler {
	return &SurveyLinkHandler{linkUseCase: linkUseCase, log: log}
}

// GenerateLinks cria os links pendentes da pesquisa
// @Summary Gera links de resposta
// @Tags survey-links
// @Produce json
// @Param id path string true "ID da pesquisa"
// @Success 201 {object} map[string]interface{}
// @Router /api/surveys/{id}/links [post]
func (h *SurveyLinkHandler) GenerateLinks(c *fiber.Ctx) error {
	surveyID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid survey id")
	}

	links, err := h.linkUseCase.GenerateLinks(c.UserContext(), surveyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    links,
		"created": len(links),
	})
}

// GetLinks lista os links da pesquisa
func (h *SurveyLinkHandler) GetLinks(c *fiber.Ctx) error {
	surveyID, ok := uuidParam(c, "id")
	if !ok {
		return badRequest(c, "invalid survey id")
	}

	links, err := h.linkUseCase.ListLinks(c.UserContext(), surveyID, c.Query("status"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"data":  links,
		"total": len(links),
	})
}

// SubmitResponse recebe a resposta de um colaborador pelo link público
// @Summary Envia a resposta de uma pesquisa
// @Tags survey-links
// @Accept json
// @Produce json
// @Param token path string true "Token do link"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Link já respondido"
// @Failure 410 {object} map[string]interface{} "Link expirado"
// @Failure 422 {object} map[string]interface{} "Resposta inválida"
// @Router /public/links/{token}/responses [post]
func (h *SurveyLinkHandler) SubmitResponse(c *fiber.Ctx) error {
	token, ok := uuidParam(c, "token")
	if !ok {
		return badRequest(c, "invalid link token")
	}
	var req submitResponseRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	answers := make([]sociometry.Answer, len(req.Responses))
	for i, a := range req.Responses {
		answers[i] = sociometry.Answer{QuestionID: a.QuestionID, Choices: a.Choices}
	}

	record, err := h.linkUseCase.SubmitResponse(c.UserContext(), token, answers)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        record.ID,
		"survey_id": record.SurveyID,
	})
}
