package period

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

func TestRepository_WithTx_BindsQueriesToTransaction(t *testing.T) {
	gormDB, mock, cleanup := newGormMock(t)
	defer cleanup()

	sqlDB, err := gormDB.DB()
	assert.NoError(t, err)

	mock.ExpectBegin()
	tx, err := sqlDB.Begin()
	assert.NoError(t, err)

	repo := NewRepository(gormDB)
	txRepo := repo.WithTx(tx).(*repository)

	// Sesi hasil WithTx harus memakai transaksi sebagai ConnPool,
	// bukan pool koneksi
	assert.Same(t, tx, txRepo.db.Statement.ConnPool)
	assert.NotSame(t, tx, repo.(*repository).db.Statement.ConnPool)

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	overlap, err := txRepo.HasOverlappingPeriod(
		context.Background(),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	assert.NoError(t, err)
	assert.True(t, overlap)

	mock.ExpectRollback()
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_WithTx_DoesNotLeakIntoBaseRepo(t *testing.T) {
	gormDB, mock, cleanup := newGormMock(t)
	defer cleanup()

	sqlDB, err := gormDB.DB()
	assert.NoError(t, err)

	mock.ExpectBegin()
	tx, err := sqlDB.Begin()
	assert.NoError(t, err)

	repo := NewRepository(gormDB).(*repository)
	basePool := repo.db.Statement.ConnPool

	_ = repo.WithTx(tx)

	// Repository dasar tetap terikat ke pool setelah WithTx
	assert.Same(t, basePool, repo.db.Statement.ConnPool)

	mock.ExpectRollback()
	assert.NoError(t, tx.Rollback())
}
