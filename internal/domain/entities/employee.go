package entities

import "github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"

// Employee representa um colaborador avaliado nas pesquisas
type Employee struct {
	Base
	Name       string `json:"name" gorm:"column:name"`
	Email      string `json:"email" gorm:"column:email"`
	Department string `json:"department" gorm:"column:department"`
	Position   string `json:"position" gorm:"column:position"`
	Status     string `json:"status" gorm:"column:status;default:active"`
	Avatar     string `json:"avatar,omitempty" gorm:"column:avatar"`
	CreatedBy  string `json:"created_by,omitempty" gorm:"column:created_by;type:uuid"`
}

func (Employee) TableName() string {
	return "employees"
}

// ToSociometry converte o registro para o modelo usado pelo motor de análise
func (e Employee) ToSociometry() sociometry.Employee {
	return sociometry.Employee{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		Status:     e.Status,
		Avatar:     e.Avatar,
	}
}

// EmployeesToSociometry converte uma lista de colaboradores
func EmployeesToSociometry(list []Employee) []sociometry.Employee {
	out := make([]sociometry.Employee, len(list))
	for i, e := range list {
		out[i] = e.ToSociometry()
	}
	return out
}
