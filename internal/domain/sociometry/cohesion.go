package sociometry

import (
	"math"
	"sort"
)

const (
	MinCohesion = 0.0
	MaxCohesion = 10.0
)

type pairKey struct{ from, to string }

// pairWeights aggregates edge strengths per ordered pair.
type pairWeights struct {
	positive map[pairKey]float64
	negative map[pairKey]float64
}

func newPairWeights(g *Graph) *pairWeights {
	w := &pairWeights{
		positive: make(map[pairKey]float64),
		negative: make(map[pairKey]float64),
	}
	for _, edge := range g.Edges {
		k := pairKey{edge.Source, edge.Target}
		switch edge.Type {
		case Positive:
			w.positive[k] += edge.Strength
		case Negative:
			w.negative[k] += edge.Strength
		}
	}
	return w
}

// score computes cohesion for members, which must be sorted and unique.
//
//	score = baseline + wPos * mean_pairs(min(1, pos(u,v))) - wNeg * sum(neg) / pairs
//
// clamped to [0, 10]. Pairs are visited in sorted order so the float sums are reproducible.
func (e *Engine) score(w *pairWeights, members []string) float64 {
	m := len(members)
	pairs := m * (m - 1)
	if pairs == 0 {
		return clamp(e.cfg.CohesionBaseline)
	}

	var posSum, negSum float64
	for _, a := range members {
		for _, b := range members {
			if a == b {
				continue
			}
			k := pairKey{a, b}
			posSum += math.Min(1, w.positive[k])
			negSum += w.negative[k]
		}
	}

	n := float64(pairs)
	return clamp(e.cfg.CohesionBaseline + e.cfg.PositiveWeight*posSum/n - e.cfg.NegativeWeight*negSum/n)
}

func clamp(v float64) float64 {
	return math.Max(MinCohesion, math.Min(MaxCohesion, v))
}

// memberSet validates a team roster against the graph and returns its ids sorted.
func memberSet(g *Graph, field string, ids []string) ([]string, error) {
	if g == nil {
		return nil, invalid("graph", "graph is required")
	}
	if len(ids) == 0 {
		return nil, invalid(field, "at least one employee is required")
	}
	nodes := g.nodeSet()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := nodes[id]; !ok {
			return nil, invalid(field, "employee %q is not in the graph", id)
		}
		if seen[id] {
			return nil, invalid(field, "employee %q listed twice", id)
		}
		seen[id] = true
	}
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return sorted, nil
}

// ScoreCohesion rates how favorably the members are connected, in [0, 10].
//
// A team with no internal edges scores the configured baseline. Adding a
// positive edge between members never lowers the score; adding a negative
// edge never raises it. Member order does not matter.
func (e *Engine) ScoreCohesion(g *Graph, members []string) (float64, error) {
	ids, err := memberSet(g, "members", members)
	if err != nil {
		return 0, err
	}
	return e.score(newPairWeights(g), ids), nil
}

// ScoreTeams fills Cohesion for every team. Invalid membership fails the whole call.
func (e *Engine) ScoreTeams(g *Graph, teams []Team) ([]Team, error) {
	w := newPairWeights(g)
	out := make([]Team, len(teams))
	for i, t := range teams {
		ids, err := memberSet(g, "teams["+t.ID+"].members", t.Members)
		if err != nil {
			return nil, err
		}
		t.Members = append([]string(nil), t.Members...)
		t.Cohesion = e.score(w, ids)
		out[i] = t
	}
	return out, nil
}
