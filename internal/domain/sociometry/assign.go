package sociometry

import "sort"

// AutoAssign splits candidates into teamCount teams.
//
// Candidates are placed in star order (largest node first). Each one joins the
// non-full team whose cohesion would be highest with them in it; ties go to the
// team with fewer members, then to the lower index. Team capacity is
// ceil(len(candidates) / teamCount). The result is deterministic.
func (e *Engine) AutoAssign(g *Graph, candidates []string, teamCount int) ([][]string, error) {
	if teamCount < 1 {
		return nil, invalid("teamCount", "must be at least 1, got %d", teamCount)
	}
	if _, err := memberSet(g, "candidates", candidates); err != nil {
		return nil, err
	}

	order := starOrder(g, candidates)
	capacity := (len(order) + teamCount - 1) / teamCount
	w := newPairWeights(g)

	teams := make([][]string, teamCount)
	for i := range teams {
		teams[i] = []string{}
	}

	for _, candidate := range order {
		best := -1
		bestScore := 0.0
		for i, members := range teams {
			if len(members) >= capacity {
				continue
			}
			trial := append(append([]string(nil), members...), candidate)
			sort.Strings(trial)
			s := e.score(w, trial)
			if best == -1 || s > bestScore || (s == bestScore && len(members) < len(teams[best])) {
				best, bestScore = i, s
			}
		}
		teams[best] = append(teams[best], candidate)
	}
	return teams, nil
}

// starOrder sorts ids like TopStars does.
func starOrder(g *Graph, ids []string) []string {
	nodes := g.nodeSet()
	out := append([]string(nil), ids...)
	sort.Slice(out, func(i, j int) bool {
		a, b := nodes[out[i]], nodes[out[j]]
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		return a.ID < b.ID
	})
	return out
}
