package usecases

import (
	"time"

	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
	"github.com/PavaniTiago/socioteam-api/internal/infrastructure/cache"
)

const surveyID = "s1"

func employee(id, department, status string) entities.Employee {
	return entities.Employee{Base: entities.Base{ID: id}, Name: "Employee " + id, Department: department, Status: status}
}

// roster: A, B and C active, D inactive
func testEmployees() []entities.Employee {
	return []entities.Employee{
		employee("A", "IT", sociometry.StatusActive),
		employee("B", "IT", sociometry.StatusActive),
		employee("C", "Sales", sociometry.StatusActive),
		employee("D", "Sales", sociometry.StatusInactive),
	}
}

func testSurvey() *entities.Survey {
	return &entities.Survey{
		Base:   entities.Base{ID: surveyID},
		Name:   "Q1 climate",
		Status: "active",
		Questions: []entities.SurveyQuestion{
			{Base: entities.Base{ID: "q1"}, SurveyID: surveyID, Type: "positive", MaxChoices: 3, Order: 1},
			{Base: entities.Base{ID: "q2"}, SurveyID: surveyID, Type: "negative", MaxChoices: 3, Order: 2},
			{Base: entities.Base{ID: "q3"}, SurveyID: surveyID, Type: "neutral", MaxChoices: 3, Order: 3},
		},
	}
}

func choice(question, target string, position int) entities.SurveyResponseChoice {
	return entities.SurveyResponseChoice{QuestionID: question, ChoiceEmployeeID: target, Position: position}
}

// A likes B then C, dislikes C, names B as reference. B likes A. C dislikes A.
func testResponses() []entities.SurveyResponse {
	at := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	return []entities.SurveyResponse{
		{
			Base: entities.Base{ID: "r1", CreatedAt: at}, EmployeeID: "A", SurveyID: surveyID,
			Choices: []entities.SurveyResponseChoice{
				choice("q1", "B", 1), choice("q1", "C", 2), choice("q2", "C", 1), choice("q3", "B", 1),
			},
		},
		{
			Base: entities.Base{ID: "r2", CreatedAt: at}, EmployeeID: "B", SurveyID: surveyID,
			Choices: []entities.SurveyResponseChoice{choice("q1", "A", 1)},
		},
		{
			Base: entities.Base{ID: "r3", CreatedAt: at.Add(24 * time.Hour)}, EmployeeID: "C", SurveyID: surveyID,
			Choices: []entities.SurveyResponseChoice{choice("q2", "A", 1)},
		},
	}
}

func newTestSociometry(employees *mockEmployeeRepository, surveys *mockSurveyRepository) *sociometryUseCase {
	return NewSociometryUseCase(
		employees,
		surveys,
		sociometry.New(sociometry.DefaultConfig()),
		cache.NewGraphCache(time.Minute),
		zap.NewNop(),
	).(*sociometryUseCase)
}
