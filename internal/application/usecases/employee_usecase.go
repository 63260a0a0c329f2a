package usecases

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/socioteam-api/internal/domain/entities"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

type EmployeeUseCase interface {
	GetEmployees(ctx context.Context, filter repositories.EmployeeFilter) ([]entities.Employee, error)
}

type employeeUseCase struct {
	repo repositories.EmployeeRepository
}

func NewEmployeeUseCase(repo repositories.EmployeeRepository) EmployeeUseCase {
	return &employeeUseCase{repo}
}

func (uc *employeeUseCase) GetEmployees(ctx context.Context, filter repositories.EmployeeFilter) ([]entities.Employee, error) {
	switch filter.Status {
	case "", sociometry.StatusActive, sociometry.StatusInactive:
	default:
		return nil, &sociometry.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown employee status %q", filter.Status)}
	}
	return uc.repo.GetEmployees(ctx, filter)
}
