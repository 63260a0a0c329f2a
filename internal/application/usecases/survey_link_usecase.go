package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// SurveyLinkUseCase gerencia os links individuais e o envio público de respostas
type SurveyLinkUseCase interface {
	GenerateLinks(ctx context.Context, surveyID string) ([]entities.SurveyLink, error)
	ListLinks(ctx context.Context, surveyID, status string) ([]entities.SurveyLink, error)
	SubmitResponse(ctx context.Context, token string, answers []sociometry.Answer) (*entities.SurveyResponse, error)
}

type surveyLinkUseCase struct {
	loader snapshotLoader
	links  repositories.SurveyLinkRepository
	graphs SociometryUseCase
	ttl    time.Duration
	now    func() time.Time
	log    *zap.Logger
}

// NewSurveyLinkUseCase cria uma nova instância de SurveyLinkUseCase.
// ttl <= 0 gera links sem expiração.
func NewSurveyLinkUseCase(
	employeeRepo repositories.EmployeeRepository,
	surveyRepo repositories.SurveyRepository,
	linkRepo repositories.SurveyLinkRepository,
	graphs SociometryUseCase,
	ttl time.Duration,
	log *zap.Logger,
) SurveyLinkUseCase {
	return &surveyLinkUseCase{
		loader: snapshotLoader{employees: employeeRepo, surveys: surveyRepo},
		links:  linkRepo,
		graphs: graphs,
		ttl:    ttl,
		now:    time.Now,
		log:    log,
	}
}

// GenerateLinks cria um link pendente para cada colaborador ativo que ainda não tem link na pesquisa.
// Retorna apenas os links criados.
func (uc *surveyLinkUseCase) GenerateLinks(ctx context.Context, surveyID string) ([]entities.SurveyLink, error) {
	if _, err := uc.loader.surveys.GetSurvey(ctx, surveyID); err != nil {
		return nil, notFound(err, fmt.Sprintf("survey %s", surveyID))
	}

	active, err := uc.loader.employees.GetEmployees(ctx, repositories.EmployeeFilter{Status: sociometry.StatusActive})
	if err != nil {
		return nil, err
	}
	existing, err := uc.links.GetLinks(ctx, surveyID, "")
	if err != nil {
		return nil, err
	}

	hasLink := make(map[string]bool, len(existing))
	for _, l := range existing {
		hasLink[l.EmployeeID] = true
	}

	now := uc.now()
	var expiresAt *time.Time
	if uc.ttl > 0 {
		t := now.Add(uc.ttl)
		expiresAt = &t
	}

	created := make([]entities.SurveyLink, 0, len(active))
	for _, e := range active {
		if hasLink[e.ID] {
			continue
		}
		created = append(created, entities.SurveyLink{
			Token:      uuid.NewString(),
			SurveyID:   surveyID,
			EmployeeID: e.ID,
			Status:     entities.LinkStatusPending,
			CreatedAt:  now,
			ExpiresAt:  expiresAt,
		})
	}

	if err := uc.links.CreateLinks(ctx, created); err != nil {
		return nil, err
	}
	uc.log.Info("survey links generated", zap.String("survey_id", surveyID), zap.Int("created", len(created)))
	return created, nil
}

var linkStatuses = map[string]bool{
	"":                           true,
	entities.LinkStatusPending:   true,
	entities.LinkStatusCompleted: true,
	entities.LinkStatusExpired:   true,
}

func (uc *surveyLinkUseCase) ListLinks(ctx context.Context, surveyID, status string) ([]entities.SurveyLink, error) {
	if !linkStatuses[status] {
		return nil, &sociometry.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown link status %q", status)}
	}
	if _, err := uc.loader.surveys.GetSurvey(ctx, surveyID); err != nil {
		return nil, notFound(err, fmt.Sprintf("survey %s", surveyID))
	}
	return uc.links.GetLinks(ctx, surveyID, status)
}

// SubmitResponse valida e grava a resposta enviada pelo link, concluindo o link
// e invalidando o grafo em cache da pesquisa
func (uc *surveyLinkUseCase) SubmitResponse(ctx context.Context, token string, answers []sociometry.Answer) (*entities.SurveyResponse, error) {
	link, err := uc.links.GetLinkByToken(ctx, token)
	if err != nil {
		return nil, notFound(err, "survey link")
	}

	now := uc.now()
	if link.Status == entities.LinkStatusCompleted {
		return nil, ErrLinkCompleted
	}
	if link.Expired(now) {
		if link.Status == entities.LinkStatusPending {
			if err := uc.links.MarkExpired(ctx, token); err != nil {
				uc.log.Warn("failed to mark survey link as expired", zap.Error(err))
			}
		}
		return nil, ErrLinkExpired
	}

	snap, err := uc.loader.load(ctx, link.SurveyID, false)
	if err != nil {
		return nil, err
	}

	resp := sociometry.Response{EmployeeID: link.EmployeeID, SurveyID: link.SurveyID, Answers: answers}
	if err := sociometry.ValidateResponse(snap.Employees, snap.Questions, resp); err != nil {
		return nil, err
	}

	record := entities.NewSurveyResponse(link.SurveyID, link.EmployeeID, answers)
	if err := uc.loader.surveys.SaveResponseForLink(ctx, &record, token, now); err != nil {
		if errors.Is(err, repositories.ErrLinkAlreadyUsed) {
			return nil, ErrLinkCompleted
		}
		return nil, err
	}

	uc.graphs.Invalidate(link.SurveyID)
	uc.log.Info("survey response submitted",
		zap.String("survey_id", link.SurveyID),
		zap.String("response_id", record.ID),
	)
	return &record, nil
}
