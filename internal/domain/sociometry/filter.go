package sociometry

import "math"

// GraphFilter narrows a graph for display. Zero values mean "no filter".
type GraphFilter struct {
	Type        Polarity // Positive or Negative; empty keeps both
	MinStrength float64
	Department  string
}

// FilterGraph returns a new graph holding the nodes and edges that match f.
// Edges survive only when both endpoints survive. The input is not modified.
func FilterGraph(g *Graph, f GraphFilter) (*Graph, error) {
	if g == nil {
		return nil, invalid("graph", "graph is required")
	}
	if f.Type != "" && f.Type != Positive && f.Type != Negative {
		return nil, invalid("type", "must be %q or %q, got %q", Positive, Negative, f.Type)
	}
	if math.IsNaN(f.MinStrength) || f.MinStrength < 0 || f.MinStrength > 1 {
		return nil, invalid("minStrength", "must be within [0,1], got %v", f.MinStrength)
	}

	keep := make(map[string]bool, len(g.Nodes))
	nodes := make([]Node, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if f.Department != "" && n.Department != f.Department {
			continue
		}
		keep[n.ID] = true
		nodes = append(nodes, n)
	}

	edges := make([]Edge, 0, len(g.Edges))
	for _, edge := range g.Edges {
		if !keep[edge.Source] || !keep[edge.Target] {
			continue
		}
		if f.Type != "" && edge.Type != f.Type {
			continue
		}
		if edge.Strength < f.MinStrength {
			continue
		}
		edges = append(edges, edge)
	}
	return &Graph{Nodes: nodes, Edges: edges}, nil
}
