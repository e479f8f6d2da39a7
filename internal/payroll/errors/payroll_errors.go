package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll period not found",
		http.StatusNotFound,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
	ErrPeriodClosed = apperror.New(
		apperror.CodePreconditionFailed,
		"payroll period is closed",
		http.StatusPreconditionFailed,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"payroll record already exists for this employee and period",
		http.StatusConflict,
	)
	ErrInvalidMoneyValue = apperror.New(
		apperror.CodeInvalidInput,
		"monetary adjustments cannot be negative",
		http.StatusBadRequest,
	)
)
