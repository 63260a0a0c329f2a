package sociometry

import "time"

var (
	qPositive = Question{ID: "q1", Type: Positive, MaxChoices: 5}
	qNegative = Question{ID: "q2", Type: Negative, MaxChoices: 3}
	qNeutral  = Question{ID: "q3", Type: Neutral, MaxChoices: 3}

	allQuestions = []Question{qPositive, qNegative, qNeutral}
)

func employees(ids ...string) []Employee {
	out := make([]Employee, len(ids))
	for i, id := range ids {
		out[i] = Employee{ID: id, Name: "Employee " + id, Department: "IT", Status: StatusActive}
	}
	return out
}

func response(from string, answers ...Answer) Response {
	return Response{ID: "r-" + from, EmployeeID: from, SurveyID: "s1", Answers: answers}
}

func positive(choices ...string) Answer { return Answer{QuestionID: qPositive.ID, Choices: choices} }
func negative(choices ...string) Answer { return Answer{QuestionID: qNegative.ID, Choices: choices} }
func neutral(choices ...string) Answer  { return Answer{QuestionID: qNeutral.ID, Choices: choices} }

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}
