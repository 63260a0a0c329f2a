package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// Team representa uma equipe montada a partir dos resultados sociométricos
type Team struct {
	Base
	Name        string `json:"name" gorm:"column:name"`
	Description string `json:"description,omitempty" gorm:"column:description"`
	CreatedBy   string `json:"created_by,omitempty" gorm:"column:created_by;type:uuid"`

	// Relações
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamMember associa um colaborador a uma equipe
type TeamMember struct {
	ID         string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	TeamID     string    `json:"team_id" gorm:"column:team_id;type:uuid"`
	EmployeeID string    `json:"employee_id" gorm:"column:employee_id;type:uuid"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MemberIDs retorna os IDs dos colaboradores da equipe
func (t Team) MemberIDs() []string {
	ids := make([]string, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.EmployeeID
	}
	return ids
}

// ToSociometry converte a equipe para o modelo do motor de análise
func (t Team) ToSociometry() sociometry.Team {
	return sociometry.Team{ID: t.ID, Name: t.Name, Members: t.MemberIDs()}
}
