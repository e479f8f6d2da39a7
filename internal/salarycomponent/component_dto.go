package salarycomponent

import "go-payroll/internal/shared/patch"

type CreateComponentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=base_salary allowance deduction"`
	Description *string `json:"description"`
}

type UpdateComponentRequest struct {
	Name        string              `json:"name"`
	Type        string              `json:"type" binding:"omitempty,oneof=base_salary allowance deduction"`
	Description patch.Field[string] `json:"description"`
}

type ComponentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
