package usecases

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// CreateTeamInput são os dados para criar uma equipe
type CreateTeamInput struct {
	Name        string
	Description string
	Members     []string
	CreatedBy   string
}

// TeamUseCase define as operações de equipes
type TeamUseCase interface {
	ListTeams(ctx context.Context, surveyID string) ([]sociometry.Team, error)
	CreateTeam(ctx context.Context, input CreateTeamInput) (*entities.Team, error)
	ReplaceMembers(ctx context.Context, teamID string, members []string) (*entities.Team, error)
	ScoreMembers(ctx context.Context, surveyID string, members []string) (float64, error)
	AutoAssign(ctx context.Context, surveyID string, candidates []string, teamCount int) ([]sociometry.Team, error)
}

type teamUseCase struct {
	teams     repositories.TeamRepository
	employees repositories.EmployeeRepository
	graphs    SociometryUseCase
	engine    *sociometry.Engine
	log       *zap.Logger
}

// NewTeamUseCase cria uma nova instância de TeamUseCase
func NewTeamUseCase(
	teamRepo repositories.TeamRepository,
	employeeRepo repositories.EmployeeRepository,
	graphs SociometryUseCase,
	engine *sociometry.Engine,
	log *zap.Logger,
) TeamUseCase {
	return &teamUseCase{
		teams:     teamRepo,
		employees: employeeRepo,
		graphs:    graphs,
		engine:    engine,
		log:       log,
	}
}

// ListTeams retorna as equipes com a coesão calculada sobre o grafo da pesquisa
func (uc *teamUseCase) ListTeams(ctx context.Context, surveyID string) ([]sociometry.Team, error) {
	g, err := uc.graphs.Graph(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	teams, err := uc.teams.GetTeams(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]sociometry.Team, len(teams))
	for i, t := range teams {
		out[i] = t.ToSociometry()
		out[i].Cohesion, _ = scoreKnownMembers(uc.engine, g, out[i].Members)
	}
	return out, nil
}

// scoreKnownMembers calcula a coesão considerando apenas membros presentes no grafo.
// Retorna false quando nenhum membro está no grafo.
func scoreKnownMembers(engine *sociometry.Engine, g *sociometry.Graph, members []string) (float64, bool) {
	known := make([]string, 0, len(members))
	seen := make(map[string]bool, len(members))
	for _, id := range members {
		if _, ok := g.Node(id); ok && !seen[id] {
			seen[id] = true
			known = append(known, id)
		}
	}
	if len(known) == 0 {
		return 0, false
	}
	score, err := engine.ScoreCohesion(g, known)
	if err != nil {
		return 0, false
	}
	return score, true
}

func (uc *teamUseCase) CreateTeam(ctx context.Context, input CreateTeamInput) (*entities.Team, error) {
	if err := uc.checkMembers(ctx, input.Members); err != nil {
		return nil, err
	}

	team := &entities.Team{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}
	for _, id := range input.Members {
		team.Members = append(team.Members, entities.TeamMember{EmployeeID: id})
	}

	if err := uc.teams.CreateTeam(ctx, team); err != nil {
		return nil, err
	}
	uc.log.Info("team created", zap.String("team_id", team.ID), zap.Int("members", len(team.Members)))
	return team, nil
}

func (uc *teamUseCase) ReplaceMembers(ctx context.Context, teamID string, members []string) (*entities.Team, error) {
	if _, err := uc.teams.GetTeam(ctx, teamID); err != nil {
		return nil, notFound(err, fmt.Sprintf("team %s", teamID))
	}
	if err := uc.checkMembers(ctx, members); err != nil {
		return nil, err
	}
	if err := uc.teams.ReplaceMembers(ctx, teamID, members); err != nil {
		return nil, err
	}

	team, err := uc.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("team %s", teamID))
	}
	return team, nil
}

// checkMembers garante que os membros existem e não se repetem
func (uc *teamUseCase) checkMembers(ctx context.Context, members []string) error {
	employees, err := uc.employees.GetEmployees(ctx, repositories.EmployeeFilter{})
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(employees))
	for _, e := range employees {
		known[e.ID] = true
	}

	seen := make(map[string]bool, len(members))
	for _, id := range members {
		if !known[id] {
			return &sociometry.ValidationError{Field: "members", Reason: fmt.Sprintf("unknown employee %q", id)}
		}
		if seen[id] {
			return &sociometry.ValidationError{Field: "members", Reason: fmt.Sprintf("duplicate employee %q", id)}
		}
		seen[id] = true
	}
	return nil
}

func (uc *teamUseCase) ScoreMembers(ctx context.Context, surveyID string, members []string) (float64, error) {
	g, err := uc.graphs.Graph(ctx, surveyID)
	if err != nil {
		return 0, err
	}
	return uc.engine.ScoreCohesion(g, members)
}

// AutoAssign distribui os candidatos em teamCount equipes.
// Sem candidatos, usa todos os colaboradores ativos presentes no grafo.
func (uc *teamUseCase) AutoAssign(ctx context.Context, surveyID string, candidates []string, teamCount int) ([]sociometry.Team, error) {
	g, err := uc.graphs.Graph(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		active, err := uc.employees.GetEmployees(ctx, repositories.EmployeeFilter{Status: sociometry.StatusActive})
		if err != nil {
			return nil, err
		}
		for _, e := range active {
			if _, ok := g.Node(e.ID); ok {
				candidates = append(candidates, e.ID)
			}
		}
		sort.Strings(candidates)
	}

	groups, err := uc.engine.AutoAssign(g, candidates, teamCount)
	if err != nil {
		return nil, err
	}

	teams := make([]sociometry.Team, len(groups))
	filled := make([]sociometry.Team, 0, len(groups))
	position := make([]int, 0, len(groups))
	for i, members := range groups {
		teams[i] = sociometry.Team{Name: fmt.Sprintf("Equipe %d", i+1), Members: members}
		if len(members) > 0 {
			filled = append(filled, teams[i])
			position = append(position, i)
		}
	}

	// equipes vazias (mais equipes que candidatos) ficam sem coesão
	scored, err := uc.engine.ScoreTeams(g, filled)
	if err != nil {
		return nil, err
	}
	for j, t := range scored {
		teams[position[j]] = t
	}
	return teams, nil
}
