package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PavaniTiago/socioteam-api/internal/application/usecases"
	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

type mockSociometryUseCase struct {
	mock.Mock
}

func (m *mockSociometryUseCase) GetGraph(ctx context.Context, surveyID string, filter sociometry.GraphFilter) (*sociometry.Graph, error) {
	args := m.Called(ctx, surveyID, filter)
	g, _ := args.Get(0).(*sociometry.Graph)
	return g, args.Error(1)
}

func (m *mockSociometryUseCase) GetStars(ctx context.Context, surveyID string, n int) ([]sociometry.Node, error) {
	args := m.Called(ctx, surveyID, n)
	nodes, _ := args.Get(0).([]sociometry.Node)
	return nodes, args.Error(1)
}

func (m *mockSociometryUseCase) GetIsolated(ctx context.Context, surveyID string, n int) ([]sociometry.Node, error) {
	args := m.Called(ctx, surveyID, n)
	nodes, _ := args.Get(0).([]sociometry.Node)
	return nodes, args.Error(1)
}

func (m *mockSociometryUseCase) GetConflicts(ctx context.Context, surveyID string) ([]sociometry.ConflictPair, error) {
	args := m.Called(ctx, surveyID)
	pairs, _ := args.Get(0).([]sociometry.ConflictPair)
	return pairs, args.Error(1)
}

func (m *mockSociometryUseCase) GetReferences(ctx context.Context, surveyID string, n int) ([]sociometry.Reference, error) {
	args := m.Called(ctx, surveyID, n)
	refs, _ := args.Get(0).([]sociometry.Reference)
	return refs, args.Error(1)
}

func (m *mockSociometryUseCase) Graph(ctx context.Context, surveyID string) (*sociometry.Graph, error) {
	args := m.Called(ctx, surveyID)
	g, _ := args.Get(0).(*sociometry.Graph)
	return g, args.Error(1)
}

func (m *mockSociometryUseCase) Invalidate(surveyID string) {
	m.Called(surveyID)
}

type mockTeamUseCase struct {
	mock.Mock
}

func (m *mockTeamUseCase) ListTeams(ctx context.Context, surveyID string) ([]sociometry.Team, error) {
	args := m.Called(ctx, surveyID)
	teams, _ := args.Get(0).([]sociometry.Team)
	return teams, args.Error(1)
}

func (m *mockTeamUseCase) CreateTeam(ctx context.Context, input usecases.CreateTeamInput) (*entities.Team, error) {
	args := m.Called(ctx, input)
	team, _ := args.Get(0).(*entities.Team)
	return team, args.Error(1)
}

func (m *mockTeamUseCase) ReplaceMembers(ctx context.Context, teamID string, members []string) (*entities.Team, error) {
	args := m.Called(ctx, teamID, members)
	team, _ := args.Get(0).(*entities.Team)
	return team, args.Error(1)
}

func (m *mockTeamUseCase) ScoreMembers(ctx context.Context, surveyID string, members []string) (float64, error) {
	args := m.Called(ctx, surveyID, members)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockTeamUseCase) AutoAssign(ctx context.Context, surveyID string, candidates []string, teamCount int) ([]sociometry.Team, error) {
	args := m.Called(ctx, surveyID, candidates, teamCount)
	teams, _ := args.Get(0).([]sociometry.Team)
	return teams, args.Error(1)
}

type mockDashboardUseCase struct {
	mock.Mock
}

func (m *mockDashboardUseCase) GetDashboard(ctx context.Context, surveyID string, days int) (usecases.DashboardResult, error) {
	args := m.Called(ctx, surveyID, days)
	return args.Get(0).(usecases.DashboardResult), args.Error(1)
}

type mockSurveyLinkUseCase struct {
	mock.Mock
}

func (m *mockSurveyLinkUseCase) GenerateLinks(ctx context.Context, surveyID string) ([]entities.SurveyLink, error) {
	args := m.Called(ctx, surveyID)
	links, _ := args.Get(0).([]entities.SurveyLink)
	return links, args.Error(1)
}

func (m *mockSurveyLinkUseCase) ListLinks(ctx context.Context, surveyID, status string) ([]entities.SurveyLink, error) {
	args := m.Called(ctx, surveyID, status)
	links, _ := args.Get(0).([]entities.SurveyLink)
	return links, args.Error(1)
}

func (m *mockSurveyLinkUseCase) SubmitResponse(ctx context.Context, token string, answers []sociometry.Answer) (*entities.SurveyResponse, error) {
	args := m.Called(ctx, token, answers)
	resp, _ := args.Get(0).(*entities.SurveyResponse)
	return resp, args.Error(1)
}

type mockEmployeeUseCase struct {
	mock.Mock
}

func (m *mockEmployeeUseCase) GetEmployees(ctx context.Context, filter repositories.EmployeeFilter) ([]entities.Employee, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]entities.Employee)
	return list, args.Error(1)
}
