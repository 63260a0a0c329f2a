package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

var linkNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

type linkFixture struct {
	uc        *surveyLinkUseCase
	graphs    *sociometryUseCase
	surveys   *mockSurveyRepository
	links     *mockSurveyLinkRepository
	employees *mockEmployeeRepository
}

func setupLinks(t *testing.T, ttl time.Duration) linkFixture {
	t.Helper()
	graphs, employees, surveys := setupSociometry(t)
	employees.On("GetEmployees", mock.Anything, repositories.EmployeeFilter{Status: sociometry.StatusActive}).
		Return(testEmployees()[:3], nil)
	links := new(mockSurveyLinkRepository)

	uc := NewSurveyLinkUseCase(employees, surveys, links, graphs, ttl, zap.NewNop()).(*surveyLinkUseCase)
	uc.now = func() time.Time { return linkNow }
	return linkFixture{uc: uc, graphs: graphs, surveys: surveys, links: links, employees: employees}
}

func TestSurveyLinkUseCase_GenerateLinks_SkipsExisting(t *testing.T) {
	f := setupLinks(t, 48*time.Hour)
	f.links.On("GetLinks", mock.Anything, surveyID, "").Return([]entities.SurveyLink{
		{Token: "t-a", SurveyID: surveyID, EmployeeID: "A", Status: entities.LinkStatusCompleted},
	}, nil)
	f.links.On("CreateLinks", mock.Anything, mock.Anything).Return(nil)

	created, err := f.uc.GenerateLinks(context.Background(), surveyID)
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, "B", created[0].EmployeeID)
	assert.Equal(t, "C", created[1].EmployeeID)
	for _, l := range created {
		assert.NotEmpty(t, l.Token)
		assert.Equal(t, entities.LinkStatusPending, l.Status)
		require.NotNil(t, l.ExpiresAt)
		assert.Equal(t, linkNow.Add(48*time.Hour), *l.ExpiresAt)
	}
	assert.NotEqual(t, created[0].Token, created[1].Token)
}

func TestSurveyLinkUseCase_GenerateLinks_SurveyNotFound(t *testing.T) {
	f := setupLinks(t, 0)
	f.surveys.On("GetSurvey", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := f.uc.GenerateLinks(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSurveyLinkUseCase_ListLinks_InvalidStatus(t *testing.T) {
	f := setupLinks(t, 0)

	_, err := f.uc.ListLinks(context.Background(), surveyID, "archived")
	assert.True(t, sociometry.IsValidationError(err))
	f.links.AssertNotCalled(t, "GetLinks", mock.Anything, mock.Anything, mock.Anything)
}

func TestSurveyLinkUseCase_SubmitResponse(t *testing.T) {
	f := setupLinks(t, 0)
	link := &entities.SurveyLink{Token: "tok", SurveyID: surveyID, EmployeeID: "C", Status: entities.LinkStatusPending}
	f.links.On("GetLinkByToken", mock.Anything, "tok").Return(link, nil)
	f.surveys.On("SaveResponseForLink", mock.Anything, mock.AnythingOfType("*entities.SurveyResponse"), "tok", linkNow).Return(nil)

	// warm the cache so the submission has something to invalidate
	_, err := f.graphs.Graph(context.Background(), surveyID)
	require.NoError(t, err)
	require.Equal(t, 1, f.graphs.cache.Len())

	answers := []sociometry.Answer{{QuestionID: "q1", Choices: []string{"B", "A"}}}
	record, err := f.uc.SubmitResponse(context.Background(), "tok", answers)
	require.NoError(t, err)

	assert.Equal(t, "C", record.EmployeeID)
	require.Len(t, record.Choices, 2)
	assert.Equal(t, "B", record.Choices[0].ChoiceEmployeeID)
	assert.Zero(t, f.graphs.cache.Len())
}

func TestSurveyLinkUseCase_SubmitResponse_Rejections(t *testing.T) {
	past := linkNow.Add(-time.Minute)

	tests := []struct {
		name    string
		link    *entities.SurveyLink
		lookup  error
		answers []sociometry.Answer
		check   func(t *testing.T, err error)
	}{
		{
			name:   "unknown token",
			lookup: gorm.ErrRecordNotFound,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNotFound) },
		},
		{
			name:  "completed link",
			link:  &entities.SurveyLink{Token: "tok", SurveyID: surveyID, EmployeeID: "C", Status: entities.LinkStatusCompleted},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrLinkCompleted) },
		},
		{
			name:  "expired link",
			link:  &entities.SurveyLink{Token: "tok", SurveyID: surveyID, EmployeeID: "C", Status: entities.LinkStatusPending, ExpiresAt: &past},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrLinkExpired) },
		},
		{
			name:    "self nomination",
			link:    &entities.SurveyLink{Token: "tok", SurveyID: surveyID, EmployeeID: "C", Status: entities.LinkStatusPending},
			answers: []sociometry.Answer{{QuestionID: "q1", Choices: []string{"C"}}},
			check:   func(t *testing.T, err error) { assert.True(t, sociometry.IsValidationError(err)) },
		},
		{
			name:    "too many choices",
			link:    &entities.SurveyLink{Token: "tok", SurveyID: surveyID, EmployeeID: "D", Status: entities.LinkStatusPending},
			answers: []sociometry.Answer{{QuestionID: "q2", Choices: []string{"A", "B", "C", "D"}}},
			check:   func(t *testing.T, err error) { assert.True(t, sociometry.IsValidationError(err)) },
		},
		{
			name: "question answered twice",
			link: &entities.SurveyLink{Token: "tok", SurveyID: surveyID, EmployeeID: "C", Status: entities.LinkStatusPending},
			answers: []sociometry.Answer{
				{QuestionID: "q1", Choices: []string{"A"}},
				{QuestionID: "q1", Choices: []string{"A"}},
			},
			check: func(t *testing.T, err error) { assert.True(t, sociometry.IsValidationError(err)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupLinks(t, 0)
			f.links.On("GetLinkByToken", mock.Anything, "tok").Return(tt.link, tt.lookup)
			f.links.On("MarkExpired", mock.Anything, "tok").Return(nil)

			_, err := f.uc.SubmitResponse(context.Background(), "tok", tt.answers)
			require.Error(t, err)
			tt.check(t, err)
			f.surveys.AssertNotCalled(t, "SaveResponseForLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSurveyLinkUseCase_SubmitResponse_RaceOnLink(t *testing.T) {
	f := setupLinks(t, 0)
	link := &entities.SurveyLink{Token: "tok", SurveyID: surveyID, EmployeeID: "C", Status: entities.LinkStatusPending}
	f.links.On("GetLinkByToken", mock.Anything, "tok").Return(link, nil)
	f.surveys.On("SaveResponseForLink", mock.Anything, mock.Anything, "tok", linkNow).Return(repositories.ErrLinkAlreadyUsed)

	_, err := f.uc.SubmitResponse(context.Background(), "tok", nil)
	assert.ErrorIs(t, err, ErrLinkCompleted)
}
