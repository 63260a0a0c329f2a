package sociometry

import "sort"

// Config holds the tunable constants of the engine.
type Config struct {
	BaseSize int // node size with no positive nominations
	SizeStep int // size added per incoming positive edge

	CohesionBaseline float64 // score of a team with no internal edges
	PositiveWeight   float64
	NegativeWeight   float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		BaseSize:         10,
		SizeStep:         3,
		CohesionBaseline: 5,
		PositiveWeight:   5,
		NegativeWeight:   5,
	}
}

// Engine builds and scores sociograms. It holds only configuration and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// EdgeStrength is the strength of a nomination placed at the given 1-based rank of a choice list.
func EdgeStrength(rank int) float64 {
	if rank < 1 {
		return 0
	}
	return 1 / float64(rank)
}

// roster indexes the immutable inputs of one call.
type roster struct {
	employees map[string]Employee
	questions map[string]Question
}

func newRoster(employees []Employee, questions []Question) (*roster, error) {
	r := &roster{
		employees: make(map[string]Employee, len(employees)),
		questions: make(map[string]Question, len(questions)),
	}
	for _, emp := range employees {
		if emp.ID == "" {
			return nil, invalid("employees", "employee with empty id")
		}
		if _, dup := r.employees[emp.ID]; dup {
			return nil, invalid("employees", "duplicate employee id %q", emp.ID)
		}
		r.employees[emp.ID] = emp
	}
	for _, q := range questions {
		if q.ID == "" {
			return nil, invalid("questions", "question with empty id")
		}
		if _, dup := r.questions[q.ID]; dup {
			return nil, invalid("questions", "duplicate question id %q", q.ID)
		}
		if !q.Type.Valid() {
			return nil, invalid("questions", "question %q has unknown type %q", q.ID, q.Type)
		}
		if q.MaxChoices < 1 {
			return nil, invalid("questions", "question %q has maxChoices %d", q.ID, q.MaxChoices)
		}
		r.questions[q.ID] = q
	}
	return r, nil
}

// validate checks one response against the roster and question set.
func (r *roster) validate(resp Response) error {
	if _, ok := r.employees[resp.EmployeeID]; !ok {
		return invalid("employeeId", "respondent %q is not in the roster", resp.EmployeeID)
	}
	// uma resposta por pergunta: respostas repetidas seriam mescladas ao recarregar e estourariam MaxChoices
	answered := make(map[string]bool, len(resp.Answers))
	for _, ans := range resp.Answers {
		q, ok := r.questions[ans.QuestionID]
		if !ok {
			return invalid("questionId", "unknown question %q", ans.QuestionID)
		}
		if answered[q.ID] {
			return invalid("questionId", "question %q answered more than once", q.ID)
		}
		answered[q.ID] = true
		if len(ans.Choices) > q.MaxChoices {
			return invalid("choices", "question %q allows %d choices, got %d", q.ID, q.MaxChoices, len(ans.Choices))
		}
		seen := make(map[string]bool, len(ans.Choices))
		for _, choice := range ans.Choices {
			if _, ok := r.employees[choice]; !ok {
				return invalid("choices", "employee %q is not in the roster", choice)
			}
			if choice == resp.EmployeeID {
				return invalid("choices", "employee %q nominated themselves", choice)
			}
			if seen[choice] {
				return invalid("choices", "employee %q chosen twice for question %q", choice, q.ID)
			}
			seen[choice] = true
		}
	}
	return nil
}

// ValidateResponse checks a single submission without building a graph.
func ValidateResponse(employees []Employee, questions []Question, resp Response) error {
	r, err := newRoster(employees, questions)
	if err != nil {
		return err
	}
	return r.validate(resp)
}

// BuildGraph turns survey responses into a directed sociogram.
//
// Every choice of a positive or negative question yields one edge from the
// respondent to the chosen employee, with strength 1/rank. Neutral answers are
// validated but produce no edges. Repeated nominations stay as parallel edges.
func (e *Engine) BuildGraph(employees []Employee, responses []Response, questions []Question) (*Graph, error) {
	r, err := newRoster(employees, questions)
	if err != nil {
		return nil, err
	}

	var edges []Edge
	positiveIn := make(map[string]int)
	negativeIn := make(map[string]int)

	for _, resp := range responses {
		if err := r.validate(resp); err != nil {
			return nil, err
		}
		for _, ans := range resp.Answers {
			polarity := r.questions[ans.QuestionID].Type
			if polarity == Neutral {
				continue
			}
			for i, choice := range ans.Choices {
				edges = append(edges, Edge{
					Source:     resp.EmployeeID,
					Target:     choice,
					Type:       polarity,
					Strength:   EdgeStrength(i + 1),
					QuestionID: ans.QuestionID,
					Rank:       i + 1,
				})
				if polarity == Positive {
					positiveIn[choice]++
				} else {
					negativeIn[choice]++
				}
			}
		}
	}

	nodes := make([]Node, 0, len(employees))
	for _, emp := range employees {
		nodes = append(nodes, Node{
			ID:         emp.ID,
			Name:       emp.Name,
			Department: emp.Department,
			Avatar:     emp.Avatar,
			Size:       e.cfg.BaseSize + e.cfg.SizeStep*positiveIn[emp.ID],
			PositiveIn: positiveIn[emp.ID],
			NegativeIn: negativeIn[emp.ID],
		})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	if edges == nil {
		edges = []Edge{}
	}
	return &Graph{Nodes: nodes, Edges: edges}, nil
}
