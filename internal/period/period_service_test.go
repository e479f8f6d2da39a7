package period

import (
	"context"
	"database/sql"
	"testing"
	"time"

	perioderrors "go-payroll/internal/period/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn               func(tx *sql.Tx) Repository
	createFn               func(ctx context.Context, period *PayrollPeriod) error
	findAllFn              func(ctx context.Context) ([]PayrollPeriod, error)
	findByIDFn             func(ctx context.Context, id string) (*PayrollPeriod, error)
	updateFn               func(ctx context.Context, period *PayrollPeriod) error
	hasOverlappingPeriodFn func(ctx context.Context, periodStart, periodEnd time.Time) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, period *PayrollPeriod) error {
	return f.createFn(ctx, period)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]PayrollPeriod, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*PayrollPeriod, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, period *PayrollPeriod) error {
	return f.updateFn(ctx, period)
}
func (f *fakeRepo) HasOverlappingPeriod(ctx context.Context, periodStart, periodEnd time.Time) (bool, error) {
	return f.hasOverlappingPeriodFn(ctx, periodStart, periodEnd)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, period *PayrollPeriod) error { return nil }
	repo.updateFn = func(ctx context.Context, period *PayrollPeriod) error { return nil }
	repo.hasOverlappingPeriodFn = func(ctx context.Context, periodStart, periodEnd time.Time) (bool, error) {
		return false, nil
	}
	return repo
}

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreatePeriodRequest{
		Year:        2024,
		Month:       1,
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 1, resp.Month)
	assert.False(t, resp.IsClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_Overlap(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.hasOverlappingPeriodFn = func(ctx context.Context, periodStart, periodEnd time.Time) (bool, error) {
		return true, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreatePeriodRequest{
		Year:        2024,
		Month:       1,
		PeriodStart: "2024-01-15",
		PeriodEnd:   "2024-02-14",
	})

	assert.ErrorIs(t, err, perioderrors.ErrPeriodOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_ExclusionConstraintMapsToOverlap(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	// Dua create bersamaan bisa sama-sama lolos cek overlap; constraint
	// database menangkap yang kalah dan harus muncul sebagai konflik domain
	repo := newFakeRepo()
	repo.createFn = func(ctx context.Context, period *PayrollPeriod) error {
		return &pgconn.PgError{Code: "23P01", ConstraintName: "ex_period_range"}
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreatePeriodRequest{
		Year:        2024,
		Month:       1,
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-31",
	})

	assert.ErrorIs(t, err, perioderrors.ErrPeriodOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo())

	cases := []struct {
		name  string
		start string
		end   string
		want  error
	}{
		{"end before start", "2024-01-31", "2024-01-01", perioderrors.ErrInvalidPeriodRange},
		{"start equals end", "2024-01-15", "2024-01-15", perioderrors.ErrInvalidPeriodRange},
		{"bad date format", "01-01-2024", "2024-01-31", perioderrors.ErrInvalidDateFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreatePeriodRequest{
				Year:        2024,
				Month:       1,
				PeriodStart: tc.start,
				PeriodEnd:   tc.end,
			})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_Close(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	stored := &PayrollPeriod{
		ID:          uuid.New(),
		Year:        2024,
		Month:       1,
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*PayrollPeriod, error) { return stored, nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Close(context.Background(), stored.ID.String())

	assert.NoError(t, err)
	assert.True(t, resp.IsClosed)

	// Close kedua ditolak, bukan diterima diam-diam
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Close(context.Background(), stored.ID.String())

	assert.ErrorIs(t, err, perioderrors.ErrPeriodAlreadyClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Close_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*PayrollPeriod, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Close(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, perioderrors.ErrPeriodNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
