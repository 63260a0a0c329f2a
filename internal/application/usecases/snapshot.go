package usecases

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// snapshot é a fotografia de uma pesquisa usada pelo motor de análise
type snapshot struct {
	Survey    *entities.Survey
	Employees []sociometry.Employee
	Questions []sociometry.Question
	Responses []sociometry.Response
}

type snapshotLoader struct {
	employees repositories.EmployeeRepository
	surveys   repositories.SurveyRepository
}

// load busca pesquisa, colaboradores e respostas em paralelo.
// Com withResponses falso as respostas não são lidas.
func (l snapshotLoader) load(ctx context.Context, surveyID string, withResponses bool) (*snapshot, error) {
	var (
		survey    *entities.Survey
		employees []entities.Employee
		responses []entities.SurveyResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		survey, err = l.surveys.GetSurvey(gctx, surveyID)
		return notFound(err, fmt.Sprintf("survey %s", surveyID))
	})
	g.Go(func() error {
		var err error
		employees, err = l.employees.GetEmployees(gctx, repositories.EmployeeFilter{})
		return err
	})
	if withResponses {
		g.Go(func() error {
			var err error
			responses, err = l.surveys.GetResponses(gctx, surveyID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snapshot{
		Survey:    survey,
		Employees: entities.EmployeesToSociometry(employees),
		Questions: entities.QuestionsToSociometry(survey.Questions),
		Responses: entities.ResponsesToSociometry(responses),
	}, nil
}
