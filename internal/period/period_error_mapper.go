package period

import (
	"errors"

	perioderrors "go-payroll/internal/period/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError menerjemahkan pelanggaran exclusion constraint
// ex_period_range (kode 23P01) menjadi error domain. Constraint adalah
// garis pertahanan terakhir ketika dua create yang tumpang tindih lolos
// pemeriksaan overlap bersamaan.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
		if pgErr.ConstraintName == "ex_period_range" {
			return perioderrors.ErrPeriodOverlap
		}
	}
	return err
}
