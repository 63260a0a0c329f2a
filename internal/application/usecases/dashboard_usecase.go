package usecases

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// SurveyInfo identifica a pesquisa no resultado do dashboard
type SurveyInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// DashboardResult reúne os indicadores da pesquisa
type DashboardResult struct {
	Survey  SurveyInfo         `json:"survey"`
	Summary sociometry.Summary `json:"summary"`

	Stars    []sociometry.Node `json:"stars"`
	Isolated []sociometry.Node `json:"isolated"`

	Conflicts       int `json:"conflicts"`
	MutualConflicts int `json:"mutual_conflicts"`

	// Média da coesão das equipes; nulo quando não há equipes com membros no grafo
	AverageCohesion *float64 `json:"average_cohesion"`

	GeneratedAt time.Time `json:"generated_at"`
}

// DashboardUseCase define a interface para o dashboard da pesquisa
type DashboardUseCase interface {
	GetDashboard(ctx context.Context, surveyID string, days int) (DashboardResult, error)
}

type dashboardUseCase struct {
	loader snapshotLoader
	teams  repositories.TeamRepository
	engine *sociometry.Engine
	loc    *time.Location
	now    func() time.Time
	log    *zap.Logger
}

// NewDashboardUseCase cria uma nova instância de DashboardUseCase
func NewDashboardUseCase(
	employeeRepo repositories.EmployeeRepository,
	surveyRepo repositories.SurveyRepository,
	teamRepo repositories.TeamRepository,
	engine *sociometry.Engine,
	loc *time.Location,
	log *zap.Logger,
) DashboardUseCase {
	return &dashboardUseCase{
		loader: snapshotLoader{employees: employeeRepo, surveys: surveyRepo},
		teams:  teamRepo,
		engine: engine,
		loc:    loc,
		now:    time.Now,
		log:    log,
	}
}

const (
	dashboardStars    = 5
	dashboardIsolated = 3
)

// GetDashboard busca snapshot e equipes em paralelo e calcula os indicadores.
// Resumo e grafo saem do mesmo snapshot; o cache de grafos não é usado aqui.
func (uc *dashboardUseCase) GetDashboard(ctx context.Context, surveyID string, days int) (DashboardResult, error) {
	startTime := uc.now()

	var (
		snap  *snapshot
		teams []entities.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = uc.loader.load(gctx, surveyID, true)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = uc.teams.GetTeams(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardResult{}, err
	}

	graph, err := uc.engine.BuildGraph(snap.Employees, snap.Responses, snap.Questions)
	if err != nil {
		return DashboardResult{}, err
	}
	summary, err := sociometry.Summarize(snap.Employees, snap.Responses, snap.Questions, startTime, days, uc.loc)
	if err != nil {
		return DashboardResult{}, err
	}

	result := DashboardResult{
		Survey: SurveyInfo{
			ID:     snap.Survey.ID,
			Name:   snap.Survey.Name,
			Status: snap.Survey.Status,
		},
		Summary:     summary,
		Stars:       nodesFor(graph, sociometry.TopStars(graph, dashboardStars)),
		Isolated:    nodesFor(graph, sociometry.Isolated(graph, dashboardIsolated)),
		GeneratedAt: startTime,
	}

	for _, c := range sociometry.Conflicts(graph) {
		result.Conflicts++
		if c.Mutual {
			result.MutualConflicts++
		}
	}

	var total float64
	var scored int
	for _, t := range teams {
		if score, ok := scoreKnownMembers(uc.engine, graph, t.MemberIDs()); ok {
			total += score
			scored++
		}
	}
	if scored > 0 {
		avg := math.Round(total/float64(scored)*100) / 100
		result.AverageCohesion = &avg
	}

	uc.log.Debug("dashboard computed",
		zap.String("survey_id", surveyID),
		zap.Duration("elapsed", uc.now().Sub(startTime)),
	)
	return result, nil
}
