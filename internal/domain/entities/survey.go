package entities

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// Status possíveis de um link de pesquisa
const (
	LinkStatusPending   = "pending"
	LinkStatusCompleted = "completed"
	LinkStatusExpired   = "expired"
)

// Survey representa uma pesquisa sociométrica
type Survey struct {
	Base
	Name        string `json:"name" gorm:"column:name"`
	Description string `json:"description,omitempty" gorm:"column:description"`
	Status      string `json:"status" gorm:"column:status;default:draft"`
	CreatedBy   string `json:"created_by,omitempty" gorm:"column:created_by;type:uuid"`

	// Relações
	Questions []SurveyQuestion `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
}

func (Survey) TableName() string {
	return "surveys"
}

// SurveyQuestion representa uma pergunta da pesquisa
type SurveyQuestion struct {
	Base
	SurveyID   string `json:"survey_id" gorm:"column:survey_id;type:uuid"`
	Text       string `json:"text" gorm:"column:text"`
	Type       string `json:"type" gorm:"column:type"`
	MaxChoices int    `json:"max_choices" gorm:"column:max_choices"`
	Order      int    `json:"order" gorm:"column:order"`
}

func (SurveyQuestion) TableName() string {
	return "survey_questions"
}

// ToSociometry converte a pergunta para o modelo do motor de análise
func (q SurveyQuestion) ToSociometry() sociometry.Question {
	return sociometry.Question{
		ID:         q.ID,
		Type:       sociometry.Polarity(q.Type),
		MaxChoices: q.MaxChoices,
	}
}

// QuestionsToSociometry converte as perguntas de uma pesquisa
func QuestionsToSociometry(list []SurveyQuestion) []sociometry.Question {
	out := make([]sociometry.Question, len(list))
	for i, q := range list {
		out[i] = q.ToSociometry()
	}
	return out
}

// SurveyResponse representa a submissão de um colaborador para uma pesquisa
type SurveyResponse struct {
	Base
	EmployeeID string `json:"employee_id" gorm:"column:employee_id;type:uuid"`
	SurveyID   string `json:"survey_id" gorm:"column:survey_id;type:uuid"`

	// Relações
	Choices []SurveyResponseChoice `json:"choices,omitempty" gorm:"foreignKey:ResponseID"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

// SurveyResponseChoice é uma escolha (um colaborador indicado) dentro de uma resposta.
// Position guarda a ordem de escolha dentro da pergunta, começando em 1.
type SurveyResponseChoice struct {
	ID               string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	ResponseID       string    `json:"response_id" gorm:"column:response_id;type:uuid"`
	QuestionID       string    `json:"question_id" gorm:"column:question_id;type:uuid"`
	ChoiceEmployeeID string    `json:"choice_employee_id" gorm:"column:choice_employee_id;type:uuid"`
	Position         int       `json:"position" gorm:"column:position"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
}

func (SurveyResponseChoice) TableName() string {
	return "survey_response_choices"
}

func (c *SurveyResponseChoice) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ToSociometry agrupa as escolhas por pergunta, na ordem em que as perguntas aparecem
// e, dentro de cada pergunta, pela posição da escolha
func (r SurveyResponse) ToSociometry() sociometry.Response {
	var order []string
	byQuestion := make(map[string][]SurveyResponseChoice)
	for _, c := range r.Choices {
		if _, ok := byQuestion[c.QuestionID]; !ok {
			order = append(order, c.QuestionID)
		}
		byQuestion[c.QuestionID] = append(byQuestion[c.QuestionID], c)
	}

	answers := make([]sociometry.Answer, 0, len(order))
	for _, questionID := range order {
		group := byQuestion[questionID]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Position < group[j].Position })

		ids := make([]string, len(group))
		for i, c := range group {
			ids[i] = c.ChoiceEmployeeID
		}
		answers = append(answers, sociometry.Answer{QuestionID: questionID, Choices: ids})
	}

	return sociometry.Response{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		SurveyID:    r.SurveyID,
		Answers:     answers,
		SubmittedAt: r.CreatedAt,
	}
}

// ResponsesToSociometry converte as respostas de uma pesquisa
func ResponsesToSociometry(list []SurveyResponse) []sociometry.Response {
	out := make([]sociometry.Response, len(list))
	for i, r := range list {
		out[i] = r.ToSociometry()
	}
	return out
}

// NewSurveyResponse monta a resposta persistível a partir das respostas do formulário
func NewSurveyResponse(surveyID, employeeID string, answers []sociometry.Answer) SurveyResponse {
	resp := SurveyResponse{
		Base:       Base{ID: uuid.NewString()},
		EmployeeID: employeeID,
		SurveyID:   surveyID,
	}
	for _, a := range answers {
		for i, choice := range a.Choices {
			resp.Choices = append(resp.Choices, SurveyResponseChoice{
				ResponseID:       resp.ID,
				QuestionID:       a.QuestionID,
				ChoiceEmployeeID: choice,
				Position:         i + 1,
			})
		}
	}
	return resp
}

// SurveyLink é o link individual enviado a um colaborador para responder a pesquisa
type SurveyLink struct {
	Token       string     `json:"token" gorm:"primaryKey;column:token;type:uuid"`
	SurveyID    string     `json:"survey_id" gorm:"column:survey_id;type:uuid"`
	EmployeeID  string     `json:"employee_id" gorm:"column:employee_id;type:uuid"`
	Status      string     `json:"status" gorm:"column:status;default:pending"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" gorm:"column:expires_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"column:completed_at"`
}

func (SurveyLink) TableName() string {
	return "survey_links"
}

// Expired indica se o link expirou no instante informado
func (l SurveyLink) Expired(now time.Time) bool {
	if l.Status == LinkStatusExpired {
		return true
	}
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}
