package salarycomponenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary component not found",
		http.StatusNotFound,
	)
	ErrInvalidComponentType = apperror.New(
		apperror.CodeInvalidInput,
		"salary component type must be base_salary, allowance, or deduction",
		http.StatusBadRequest,
	)
)
