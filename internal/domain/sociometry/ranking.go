package sociometry

import "sort"

// TopStars returns up to n employee ids ordered by node size descending, ties by id ascending.
func TopStars(g *Graph, n int) []string {
	return rank(g, n, func(a, b Node) bool {
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		return a.ID < b.ID
	})
}

// Isolated returns up to n employee ids ordered by node size ascending, ties by id ascending.
func Isolated(g *Graph, n int) []string {
	return rank(g, n, func(a, b Node) bool {
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.ID < b.ID
	})
}

func rank(g *Graph, n int, less func(a, b Node) bool) []string {
	if g == nil || n <= 0 {
		return []string{}
	}

	// Work on a copy; the graph is shared by callers
	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool { return less(nodes[i], nodes[j]) })

	if n > len(nodes) {
		n = len(nodes)
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = nodes[i].ID
	}
	return ids
}
