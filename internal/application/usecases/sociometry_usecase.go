package usecases

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
	"github.com/PavaniTiago/socioteam-api/internal/infrastructure/cache"
)

// SociometryUseCase expõe as análises do grafo de uma pesquisa
type SociometryUseCase interface {
	GetGraph(ctx context.Context, surveyID string, filter sociometry.GraphFilter) (*sociometry.Graph, error)
	GetStars(ctx context.Context, surveyID string, n int) ([]sociometry.Node, error)
	GetIsolated(ctx context.Context, surveyID string, n int) ([]sociometry.Node, error)
	GetConflicts(ctx context.Context, surveyID string) ([]sociometry.ConflictPair, error)
	GetReferences(ctx context.Context, surveyID string, n int) ([]sociometry.Reference, error)
	// Graph retorna o grafo completo (possivelmente em cache). O resultado é compartilhado e não deve ser alterado.
	Graph(ctx context.Context, surveyID string) (*sociometry.Graph, error)
	Invalidate(surveyID string)
}

type sociometryUseCase struct {
	loader snapshotLoader
	engine *sociometry.Engine
	cache  *cache.GraphCache
	group  singleflight.Group
	log    *zap.Logger

	// generations conta invalidações por pesquisa; um cálculo iniciado antes de uma invalidação não grava no cache
	mu          sync.Mutex
	generations map[string]uint64
}

// NewSociometryUseCase cria uma nova instância de SociometryUseCase
func NewSociometryUseCase(
	employeeRepo repositories.EmployeeRepository,
	surveyRepo repositories.SurveyRepository,
	engine *sociometry.Engine,
	graphCache *cache.GraphCache,
	log *zap.Logger,
) SociometryUseCase {
	return &sociometryUseCase{
		loader: snapshotLoader{employees: employeeRepo, surveys: surveyRepo},
		engine: engine,
		cache:  graphCache,
		log:    log,

		generations: make(map[string]uint64),
	}
}

func (uc *sociometryUseCase) Graph(ctx context.Context, surveyID string) (*sociometry.Graph, error) {
	if g, found := uc.cache.Get(surveyID); found {
		return g, nil
	}

	// requisições simultâneas para a mesma pesquisa compartilham o mesmo cálculo
	v, err, _ := uc.group.Do(surveyID, func() (interface{}, error) {
		gen := uc.generation(surveyID)
		snap, err := uc.loader.load(ctx, surveyID, true)
		if err != nil {
			return nil, err
		}
		g, err := uc.engine.BuildGraph(snap.Employees, snap.Responses, snap.Questions)
		if err != nil {
			return nil, err
		}
		if !uc.storeIfCurrent(surveyID, gen, g) {
			uc.log.Debug("sociometric graph invalidated while building", zap.String("survey_id", surveyID))
			return g, nil
		}
		uc.log.Debug("sociometric graph built",
			zap.String("survey_id", surveyID),
			zap.Int("nodes", len(g.Nodes)),
			zap.Int("edges", len(g.Edges)),
		)
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*sociometry.Graph), nil
}

func (uc *sociometryUseCase) Invalidate(surveyID string) {
	uc.mu.Lock()
	uc.generations[surveyID]++
	uc.cache.Invalidate(surveyID)
	uc.mu.Unlock()
	// chamadas novas não devem se juntar a um cálculo já desatualizado
	uc.group.Forget(surveyID)
}

func (uc *sociometryUseCase) generation(surveyID string) uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.generations[surveyID]
}

func (uc *sociometryUseCase) storeIfCurrent(surveyID string, gen uint64, g *sociometry.Graph) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.generations[surveyID] != gen {
		return false
	}
	uc.cache.Set(surveyID, g)
	return true
}

func (uc *sociometryUseCase) GetGraph(ctx context.Context, surveyID string, filter sociometry.GraphFilter) (*sociometry.Graph, error) {
	g, err := uc.Graph(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return sociometry.FilterGraph(g, filter)
}

func (uc *sociometryUseCase) GetStars(ctx context.Context, surveyID string, n int) ([]sociometry.Node, error) {
	g, err := uc.Graph(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return nodesFor(g, sociometry.TopStars(g, n)), nil
}

func (uc *sociometryUseCase) GetIsolated(ctx context.Context, surveyID string, n int) ([]sociometry.Node, error) {
	g, err := uc.Graph(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return nodesFor(g, sociometry.Isolated(g, n)), nil
}

func (uc *sociometryUseCase) GetConflicts(ctx context.Context, surveyID string) ([]sociometry.ConflictPair, error) {
	g, err := uc.Graph(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return sociometry.Conflicts(g), nil
}

// GetReferences retorna as referências técnicas; n <= 0 retorna todas
func (uc *sociometryUseCase) GetReferences(ctx context.Context, surveyID string, n int) ([]sociometry.Reference, error) {
	snap, err := uc.loader.load(ctx, surveyID, true)
	if err != nil {
		return nil, err
	}
	refs, err := sociometry.References(snap.Employees, snap.Responses, snap.Questions)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(refs) > n {
		refs = refs[:n]
	}
	return refs, nil
}

func nodesFor(g *sociometry.Graph, ids []string) []sociometry.Node {
	nodes := make([]sociometry.Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := g.Node(id); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
