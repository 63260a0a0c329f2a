package sociometry

import (
	"math"
	"sort"
	"time"
)

// DepartmentCount is the participation of one department.
type DepartmentCount struct {
	Department string `json:"department"`
	Employees  int    `json:"employees"`
	Responded  int    `json:"responses"`
}

// ChoiceDistribution counts nominations by question polarity.
type ChoiceDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// DailyCount is the number of responses submitted on one calendar day.
type DailyCount struct {
	Date      string `json:"date"`
	Responses int    `json:"responses"`
}

// Summary is the survey participation overview.
type Summary struct {
	TotalEmployees     int                `json:"totalEmployees"`
	Respondents        int                `json:"respondents"`
	ResponseRate       int                `json:"responseRate"` // percent
	ByDepartment       []DepartmentCount  `json:"byDepartment"`
	ChoiceDistribution ChoiceDistribution `json:"choiceDistribution"`
	Daily              []DailyCount       `json:"daily"`
}

// Summarize computes participation figures for a survey.
//
// Daily covers the `days` calendar days ending at now (inclusive), bucketed in loc.
// A nil loc means UTC.
func Summarize(employees []Employee, responses []Response, questions []Question, now time.Time, days int, loc *time.Location) (Summary, error) {
	r, err := newRoster(employees, questions)
	if err != nil {
		return Summary{}, err
	}
	if loc == nil {
		loc = time.UTC
	}

	responded := make(map[string]bool)
	var dist ChoiceDistribution
	perDay := make(map[string]int)
	for _, resp := range responses {
		if err := r.validate(resp); err != nil {
			return Summary{}, err
		}
		responded[resp.EmployeeID] = true
		if !resp.SubmittedAt.IsZero() {
			perDay[resp.SubmittedAt.In(loc).Format("2006-01-02")]++
		}
		for _, ans := range resp.Answers {
			switch r.questions[ans.QuestionID].Type {
			case Positive:
				dist.Positive += len(ans.Choices)
			case Negative:
				dist.Negative += len(ans.Choices)
			case Neutral:
				dist.Neutral += len(ans.Choices)
			}
		}
	}

	depts := make(map[string]*DepartmentCount)
	for _, emp := range employees {
		d, ok := depts[emp.Department]
		if !ok {
			d = &DepartmentCount{Department: emp.Department}
			depts[emp.Department] = d
		}
		d.Employees++
		if responded[emp.ID] {
			d.Responded++
		}
	}
	byDept := make([]DepartmentCount, 0, len(depts))
	for _, d := range depts {
		byDept = append(byDept, *d)
	}
	sort.Slice(byDept, func(i, j int) bool { return byDept[i].Department < byDept[j].Department })

	s := Summary{
		TotalEmployees:     len(employees),
		Respondents:        len(responded),
		ByDepartment:       byDept,
		ChoiceDistribution: dist,
		Daily:              []DailyCount{},
	}
	if len(employees) > 0 {
		s.ResponseRate = int(math.Round(float64(len(responded)) / float64(len(employees)) * 100))
	}

	today := now.In(loc)
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		s.Daily = append(s.Daily, DailyCount{Date: day, Responses: perDay[day]})
	}
	return s, nil
}
