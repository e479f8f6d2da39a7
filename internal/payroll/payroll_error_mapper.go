package payroll

import (
	"errors"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError menerjemahkan pelanggaran unique constraint menjadi
// error domain. Constraint adalah garis pertahanan terakhir ketika dua
// request lolos pemeriksaan duplikat secara bersamaan.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_employee_period" {
			return payrollerrors.ErrDuplicateRecord
		}
	}
	return err
}
