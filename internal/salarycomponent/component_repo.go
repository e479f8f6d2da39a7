package salarycomponent

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, component *SalaryComponent) error
	FindAll(ctx context.Context) ([]SalaryComponent, error)
	FindByID(ctx context.Context, id string) (*SalaryComponent, error)
	Update(ctx context.Context, component *SalaryComponent) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GORMWithTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Create(component).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryComponent, error) {
	var components []SalaryComponent
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&components).Error
	return components, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryComponent, error) {
	var component SalaryComponent
	err := r.db.WithContext(ctx).
		First(&component, "id = ?", id).Error
	return &component, err
}

func (r *repository) Update(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

// Delete mengandalkan FK ON DELETE CASCADE: assignment dan payroll_details
// historis ikut terhapus, sedangkan total pada payroll_records adalah
// snapshot sehingga tidak terpengaruh.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&SalaryComponent{}, "id = ?", id).Error
}
