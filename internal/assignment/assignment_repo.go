package assignment

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, assignment *EmployeeSalaryComponent) error
	FindByID(ctx context.Context, id string) (*EmployeeSalaryComponent, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]AssignmentWithComponent, error)
	Update(ctx context.Context, assignment *EmployeeSalaryComponent) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	ComponentExists(ctx context.Context, componentID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, assignment *EmployeeSalaryComponent) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*EmployeeSalaryComponent, error) {
	var assignment EmployeeSalaryComponent
	err := r.db.WithContext(ctx).
		First(&assignment, "id = ?", id).Error
	return &assignment, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]AssignmentWithComponent, error) {
	var assignments []AssignmentWithComponent
	query := `
SELECT
	esc.id,
	esc.employee_id,
	esc.salary_component_id,
	esc.amount,
	sc.name AS component_name,
	sc.type AS component_type
FROM employee_salary_components esc
JOIN salary_components sc ON sc.id = esc.salary_component_id
WHERE esc.employee_id = ?
ORDER BY sc.type ASC, sc.name ASC
`

	err := r.db.WithContext(ctx).Raw(query, employeeID).Scan(&assignments).Error
	return assignments, err
}

func (r *repository) Update(ctx context.Context, assignment *EmployeeSalaryComponent) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(assignment).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&EmployeeSalaryComponent{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ComponentExists(ctx context.Context, componentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("salary_components").
		Where("id = ?", componentID).
		Count(&count).Error
	return count > 0, err
}
