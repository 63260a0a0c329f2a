package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/application/usecases"
	"github.com/PavaniTiago/socioteam-api/internal/domain/repositories"
)

type EmployeeHandler struct {
	employeeUseCase usecases.EmployeeUseCase
	log             *zap.Logger
}

func NewEmployeeHandler(employeeUseCase usecases.EmployeeUseCase, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{employeeUseCase: employeeUseCase, log: log}
}

// GetEmployees lista os colaboradores
// @Summary Lista colaboradores
// @Tags employees
// @Produce json
// @Param department query string false "Departamento"
// @Param status query string false "Status (active, inactive)"
// @Success 200 {object} map[string]interface{}
// @Router /api/employees [get]
func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	filter := repositories.EmployeeFilter{
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}

	employees, err := h.employeeUseCase.GetEmployees(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"data":  employees,
		"total": len(employees),
	})
}
