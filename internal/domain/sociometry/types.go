package sociometry

import "time"

// Polarity classifies a survey question and, through it, the sign of the edges it produces.
type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
	Neutral  Polarity = "neutral"
)

// Valid reports whether p is one of the known polarities.
func (p Polarity) Valid() bool {
	switch p {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// Employee status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is the roster snapshot the engine works on.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Status     string `json:"status"`
	Avatar     string `json:"avatar,omitempty"`
}

// Question is a survey question as seen by the engine.
type Question struct {
	ID         string   `json:"id"`
	Type       Polarity `json:"type"`
	MaxChoices int      `json:"maxChoices"`
}

// Answer holds the employees chosen for one question, in the order they were picked.
type Answer struct {
	QuestionID string   `json:"questionId"`
	Choices    []string `json:"choices"`
}

// Response is one respondent's submission to a survey.
type Response struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	SurveyID    string    `json:"surveyId"`
	Answers     []Answer  `json:"responses"`
	SubmittedAt time.Time `json:"timestamp"`
}

// Node is one employee in the relationship graph.
type Node struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Avatar     string `json:"avatar,omitempty"`
	Size       int    `json:"size"`
	PositiveIn int    `json:"positiveIn"`
	NegativeIn int    `json:"negativeIn"`
}

// Edge is a directed nomination from Source (respondent) to Target (nominee).
type Edge struct {
	Source     string   `json:"source"`
	Target     string   `json:"target"`
	Type       Polarity `json:"type"`
	Strength   float64  `json:"strength"`
	QuestionID string   `json:"questionId"`
	Rank       int      `json:"rank"`
}

// Graph is the derived sociogram. Nodes are sorted by id.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"links"`
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

func (g *Graph) nodeSet() map[string]Node {
	set := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		set[n.ID] = n
	}
	return set
}

// Team is a named group of employees with its computed cohesion.
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Members  []string `json:"members"`
	Cohesion float64  `json:"cohesion"`
}
