package period

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, period *PayrollPeriod) error
	FindAll(ctx context.Context) ([]PayrollPeriod, error)
	FindByID(ctx context.Context, id string) (*PayrollPeriod, error)
	Update(ctx context.Context, period *PayrollPeriod) error
	HasOverlappingPeriod(ctx context.Context, periodStart time.Time, periodEnd time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengembalikan repository yang seluruh query-nya ikut transaksi
// milik pemanggil, sehingga check-then-insert benar-benar atomik.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GORMWithTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, period *PayrollPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PayrollPeriod, error) {
	var periods []PayrollPeriod
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollPeriod, error) {
	var period PayrollPeriod
	err := r.db.WithContext(ctx).
		First(&period, "id = ?", id).Error
	return &period, err
}

func (r *repository) Update(ctx context.Context, period *PayrollPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

// HasOverlappingPeriod menganggap batas inklusif: periode yang bersentuhan
// tepat di tanggal yang sama tetap dihitung overlap.
func (r *repository) HasOverlappingPeriod(
	ctx context.Context,
	periodStart time.Time,
	periodEnd time.Time,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollPeriod{}).
		Where("NOT (period_end < ? OR period_start > ?)", periodStart, periodEnd).
		Count(&count).Error
	return count > 0, err
}
