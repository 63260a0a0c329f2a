package sociometry

import "sort"

// Reference counts how often an employee was named on neutral questions
// such as "who is a technical reference?".
type Reference struct {
	EmployeeID  string `json:"employeeId"`
	Nominations int    `json:"nominations"`
}

// References ranks employees by neutral-question nominations, most named first,
// ties by id ascending. Employees never named are omitted. Input is validated
// the same way BuildGraph validates it.
func References(employees []Employee, responses []Response, questions []Question) ([]Reference, error) {
	r, err := newRoster(employees, questions)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, resp := range responses {
		if err := r.validate(resp); err != nil {
			return nil, err
		}
		for _, ans := range resp.Answers {
			if r.questions[ans.QuestionID].Type != Neutral {
				continue
			}
			for _, choice := range ans.Choices {
				counts[choice]++
			}
		}
	}

	out := make([]Reference, 0, len(counts))
	for id, c := range counts {
		out = append(out, Reference{EmployeeID: id, Nominations: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nominations != out[j].Nominations {
			return out[i].Nominations > out[j].Nominations
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}
