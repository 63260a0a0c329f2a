package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
)

type mockEmployeeRepository struct {
	mock.Mock
}

func (m *mockEmployeeRepository) GetEmployees(ctx context.Context, filter repositories.EmployeeFilter) ([]entities.Employee, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]entities.Employee)
	return list, args.Error(1)
}

type mockSurveyRepository struct {
	mock.Mock
}

func (m *mockSurveyRepository) GetSurvey(ctx context.Context, surveyID string) (*entities.Survey, error) {
	args := m.Called(ctx, surveyID)
	s, _ := args.Get(0).(*entities.Survey)
	return s, args.Error(1)
}

func (m *mockSurveyRepository) GetResponses(ctx context.Context, surveyID string) ([]entities.SurveyResponse, error) {
	args := m.Called(ctx, surveyID)
	list, _ := args.Get(0).([]entities.SurveyResponse)
	return list, args.Error(1)
}

func (m *mockSurveyRepository) SaveResponseForLink(ctx context.Context, resp *entities.SurveyResponse, token string, completedAt time.Time) error {
	args := m.Called(ctx, resp, token, completedAt)
	return args.Error(0)
}

type mockSurveyLinkRepository struct {
	mock.Mock
}

func (m *mockSurveyLinkRepository) CreateLinks(ctx context.Context, links []entities.SurveyLink) error {
	args := m.Called(ctx, links)
	return args.Error(0)
}

func (m *mockSurveyLinkRepository) GetLinks(ctx context.Context, surveyID, status string) ([]entities.SurveyLink, error) {
	args := m.Called(ctx, surveyID, status)
	list, _ := args.Get(0).([]entities.SurveyLink)
	return list, args.Error(1)
}

func (m *mockSurveyLinkRepository) GetLinkByToken(ctx context.Context, token string) (*entities.SurveyLink, error) {
	args := m.Called(ctx, token)
	l, _ := args.Get(0).(*entities.SurveyLink)
	return l, args.Error(1)
}

func (m *mockSurveyLinkRepository) MarkExpired(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockTeamRepository struct {
	mock.Mock
}

func (m *mockTeamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entities.Team)
	return list, args.Error(1)
}

func (m *mockTeamRepository) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	args := m.Called(ctx, teamID)
	t, _ := args.Get(0).(*entities.Team)
	return t, args.Error(1)
}

func (m *mockTeamRepository) CreateTeam(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *mockTeamRepository) ReplaceMembers(ctx context.Context, teamID string, employeeIDs []string) error {
	args := m.Called(ctx, teamID, employeeIDs)
	return args.Error(0)
}
