package assignment

import "github.com/shopspring/decimal"

type CreateAssignmentRequest struct {
	EmployeeID        string          `json:"employee_id" binding:"required,uuid"`
	SalaryComponentID string          `json:"salary_component_id" binding:"required,uuid"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
}

type UpdateAssignmentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type AssignmentResponse struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employee_id"`
	SalaryComponentID string `json:"salary_component_id"`
	ComponentName     string `json:"component_name,omitempty"`
	ComponentType     string `json:"component_type,omitempty"`
	Amount            string `json:"amount"`
}
