package sociometry

import "sort"

// ConflictPair groups the negative nominations between two employees.
// EmployeeA is always the lexicographically smaller id.
type ConflictPair struct {
	EmployeeA string  `json:"employeeA"`
	EmployeeB string  `json:"employeeB"`
	AToB      float64 `json:"aToB"` // summed strength of A→B negative edges
	BToA      float64 `json:"bToA"`
	Count     int     `json:"count"`
	Mutual    bool    `json:"mutual"`
}

// Strength is the total negative strength between the pair.
func (c ConflictPair) Strength() float64 {
	return c.AToB + c.BToA
}

// Conflicts collects every pair linked by at least one negative edge, sorted by (A, B).
func Conflicts(g *Graph) []ConflictPair {
	if g == nil {
		return []ConflictPair{}
	}

	type key struct{ a, b string }
	pairs := make(map[key]*ConflictPair)
	for _, edge := range g.Edges {
		if edge.Type != Negative {
			continue
		}
		k := key{edge.Source, edge.Target}
		forward := true
		if k.b < k.a {
			k = key{edge.Target, edge.Source}
			forward = false
		}
		p, ok := pairs[k]
		if !ok {
			p = &ConflictPair{EmployeeA: k.a, EmployeeB: k.b}
			pairs[k] = p
		}
		if forward {
			p.AToB += edge.Strength
		} else {
			p.BToA += edge.Strength
		}
		p.Count++
	}

	out := make([]ConflictPair, 0, len(pairs))
	for _, p := range pairs {
		p.Mutual = p.AToB > 0 && p.BToA > 0
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeA != out[j].EmployeeA {
			return out[i].EmployeeA < out[j].EmployeeA
		}
		return out[i].EmployeeB < out[j].EmployeeB
	})
	return out
}
