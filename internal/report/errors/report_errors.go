package reporterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var ErrPeriodNotFound = apperror.New(
	apperror.CodeNotFound,
	"no payroll period found for the requested year and month",
	http.StatusNotFound,
)
