package report

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepartmentRollup adalah hasil agregasi SQL per departemen.
// Penjumlahan dilakukan di database, di atas kolom numeric, supaya
// totalnya eksak.
type DepartmentRollup struct {
	Department      string
	EmployeeCount   int
	TotalBaseSalary decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalOvertime   decimal.Decimal
	TotalBonus      decimal.Decimal
	TotalGross      decimal.Decimal
	TotalNet        decimal.Decimal
}

type Repository interface {
	SummarizeByDepartment(ctx context.Context, year int, month int, department string) ([]DepartmentRollup, error)
	PeriodExists(ctx context.Context, year int, month int) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SummarizeByDepartment(
	ctx context.Context,
	year int,
	month int,
	department string,
) ([]DepartmentRollup, error) {
	var rollups []DepartmentRollup
	query := `
SELECT
	e.department,
	COUNT(pr.id) AS employee_count,
	COALESCE(SUM(pr.base_salary), 0) AS total_base_salary,
	COALESCE(SUM(pr.total_allowances), 0) AS total_allowances,
	COALESCE(SUM(pr.total_deductions), 0) AS total_deductions,
	COALESCE(SUM(pr.overtime_amount), 0) AS total_overtime,
	COALESCE(SUM(pr.bonus_amount), 0) AS total_bonus,
	COALESCE(SUM(pr.gross_salary), 0) AS total_gross,
	COALESCE(SUM(pr.net_salary), 0) AS total_net
FROM payroll_records pr
JOIN employees e ON e.id = pr.employee_id
JOIN payroll_periods pp ON pp.id = pr.payroll_period_id
WHERE pp.year = ? AND pp.month = ?
`
	args := []any{year, month}

	if department != "" {
		query += " AND e.department = ?"
		args = append(args, department)
	}

	query += `
GROUP BY e.department
ORDER BY e.department ASC
`

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rollups).Error
	return rollups, err
}

func (r *repository) PeriodExists(ctx context.Context, year int, month int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("payroll_periods").
		Where("year = ? AND month = ?", year, month).
		Count(&count).Error
	return count > 0, err
}
