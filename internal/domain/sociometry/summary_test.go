package sociometry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	emps := []Employee{
		{ID: "A", Department: "IT"},
		{ID: "B", Department: "IT"},
		{ID: "C", Department: "Sales"},
	}
	first := response("A", positive("B", "C"), negative("C"), neutral("B"))
	first.SubmittedAt = day(2025, time.March, 10, 9)
	second := response("C", positive("A"))
	second.SubmittedAt = day(2025, time.March, 12, 23)

	s, err := Summarize(emps, []Response{first, second}, allQuestions, day(2025, time.March, 12, 12), 3, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, s.TotalEmployees)
	assert.Equal(t, 2, s.Respondents)
	assert.Equal(t, 67, s.ResponseRate)
	assert.Equal(t, []DepartmentCount{
		{Department: "IT", Employees: 2, Responded: 1},
		{Department: "Sales", Employees: 1, Responded: 1},
	}, s.ByDepartment)
	assert.Equal(t, ChoiceDistribution{Positive: 3, Negative: 1, Neutral: 1}, s.ChoiceDistribution)
	assert.Equal(t, []DailyCount{
		{Date: "2025-03-10", Responses: 1},
		{Date: "2025-03-11", Responses: 0},
		{Date: "2025-03-12", Responses: 1},
	}, s.Daily)
}

func TestSummarize_BucketsInLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	resp := response("A", positive("B"))
	// 01:00 UTC is still the previous day in UTC-3
	resp.SubmittedAt = day(2025, time.March, 12, 1)

	s, err := Summarize(employees("A", "B"), []Response{resp}, allQuestions, day(2025, time.March, 12, 15), 2, loc)
	require.NoError(t, err)
	assert.Equal(t, []DailyCount{
		{Date: "2025-03-11", Responses: 1},
		{Date: "2025-03-12", Responses: 0},
	}, s.Daily)
}

func TestSummarize_EmptyRoster(t *testing.T) {
	s, err := Summarize(nil, nil, allQuestions, time.Now(), 0, nil)
	require.NoError(t, err)
	assert.Zero(t, s.ResponseRate)
	assert.Empty(t, s.Daily)
	assert.Empty(t, s.ByDepartment)
}

func TestSummarize_Invalid(t *testing.T) {
	_, err := Summarize(employees("A"), []Response{response("B")}, allQuestions, time.Now(), 1, nil)
	assert.True(t, IsValidationError(err))
}
