package perioderrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodRange = apperror.New(
		apperror.CodeInvalidInput,
		"period_start must be before period_end",
		http.StatusBadRequest,
	)
	ErrPeriodOverlap = apperror.New(
		apperror.CodeConflict,
		"payroll period overlaps with an existing period",
		http.StatusConflict,
	)
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll period not found",
		http.StatusNotFound,
	)
	ErrPeriodAlreadyClosed = apperror.New(
		apperror.CodeConflict,
		"payroll period is already closed",
		http.StatusConflict,
	)
	ErrPeriodClosed = apperror.New(
		apperror.CodePreconditionFailed,
		"payroll period is closed",
		http.StatusPreconditionFailed,
	)
)
