package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
)

// EmployeeFilter restringe a listagem de colaboradores
type EmployeeFilter struct {
	Department string
	Status     string
}

type EmployeeRepository interface {
	GetEmployees(ctx context.Context, filter EmployeeFilter) ([]entities.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository cria uma nova instância de EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

// GetEmployees retorna os colaboradores ordenados por nome
func (r *employeeRepository) GetEmployees(ctx context.Context, filter EmployeeFilter) ([]entities.Employee, error) {
	var employees []entities.Employee

	query := r.db.WithContext(ctx).Model(&entities.Employee{})
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Order("name ASC").Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
