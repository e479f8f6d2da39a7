package payroll

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRecord(ctx context.Context, record *PayrollRecord) error
	CreateDetails(ctx context.Context, details []PayrollDetail) error
	UpdateRecord(ctx context.Context, record *PayrollRecord) error
	FindRecordByID(ctx context.Context, id string) (*PayrollRecord, error)
	FindAllRecords(ctx context.Context, periodID string) ([]PayrollRecord, error)
	FindRecordsByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
	FindDetailsByRecord(ctx context.Context, recordID string) ([]DetailWithComponent, error)
	FindEmployeeComponents(ctx context.Context, employeeID string) ([]ComponentAmount, error)
	FindEligibleEmployees(ctx context.Context, periodID string) ([]EmployeeRef, error)
	FindEmployeeSummary(ctx context.Context, employeeID string) (*EmployeeSummary, error)
	FindPeriodByID(ctx context.Context, periodID string) (*PeriodInfo, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	HasRecord(ctx context.Context, employeeID string, periodID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengembalikan repository yang seluruh query-nya ikut transaksi
// milik pemanggil; validasi periode, cek duplikat, dan insert berjalan
// atomik.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GORMWithTx(r.db, tx)}
}

func (r *repository) CreateRecord(ctx context.Context, record *PayrollRecord) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

func (r *repository) CreateDetails(ctx context.Context, details []PayrollDetail) error {
	if len(details) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&details).Error
}

func (r *repository) UpdateRecord(ctx context.Context, record *PayrollRecord) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(record).Error
}

func (r *repository) FindRecordByID(ctx context.Context, id string) (*PayrollRecord, error) {
	var record PayrollRecord
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

// FindAllRecords mengurutkan berdasarkan nama karyawan supaya daftar
// stabil untuk dibaca HR. periodID kosong berarti tanpa filter periode.
func (r *repository) FindAllRecords(ctx context.Context, periodID string) ([]PayrollRecord, error) {
	var records []PayrollRecord
	query := r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Select("payroll_records.*").
		Joins("JOIN employees ON employees.id = payroll_records.employee_id").
		Order("employees.full_name ASC")

	if periodID != "" {
		query = query.Where("payroll_records.payroll_period_id = ?", periodID)
	}

	err := query.Find(&records).Error
	return records, err
}

func (r *repository) FindRecordsByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error) {
	var records []PayrollRecord
	err := r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Select("payroll_records.*").
		Joins("JOIN payroll_periods ON payroll_periods.id = payroll_records.payroll_period_id").
		Where("payroll_records.employee_id = ?", employeeID).
		Order("payroll_periods.year DESC, payroll_periods.month DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindDetailsByRecord(ctx context.Context, recordID string) ([]DetailWithComponent, error) {
	var details []DetailWithComponent
	query := `
SELECT
	pd.id,
	pd.salary_component_id,
	pd.amount,
	sc.name AS component_name,
	sc.type AS component_type
FROM payroll_details pd
JOIN salary_components sc ON sc.id = pd.salary_component_id
WHERE pd.payroll_record_id = ?
ORDER BY sc.type ASC, sc.name ASC
`

	err := r.db.WithContext(ctx).Raw(query, recordID).Scan(&details).Error
	return details, err
}

// FindEmployeeComponents mengambil bahan agregasi snapshot: seluruh
// assignment aktif karyawan beserta tipe komponennya.
func (r *repository) FindEmployeeComponents(ctx context.Context, employeeID string) ([]ComponentAmount, error) {
	var components []ComponentAmount
	query := `
SELECT
	esc.salary_component_id,
	sc.name AS component_name,
	sc.type AS component_type,
	esc.amount
FROM employee_salary_components esc
JOIN salary_components sc ON sc.id = esc.salary_component_id
WHERE esc.employee_id = ?
ORDER BY sc.type ASC, sc.name ASC
`

	err := r.db.WithContext(ctx).Raw(query, employeeID).Scan(&components).Error
	return components, err
}

// FindEligibleEmployees mengembalikan karyawan yang BELUM punya record
// pada periode tersebut. Karyawan yang sudah diproses otomatis lolos,
// sehingga proses bulk aman diulang setelah gagal di tengah.
func (r *repository) FindEligibleEmployees(ctx context.Context, periodID string) ([]EmployeeRef, error) {
	var employees []EmployeeRef
	query := `
SELECT e.id, e.full_name
FROM employees e
WHERE NOT EXISTS (
	SELECT 1 FROM payroll_records pr
	WHERE pr.employee_id = e.id AND pr.payroll_period_id = ?
)
ORDER BY e.full_name ASC
`

	err := r.db.WithContext(ctx).Raw(query, periodID).Scan(&employees).Error
	return employees, err
}

func (r *repository) FindEmployeeSummary(ctx context.Context, employeeID string) (*EmployeeSummary, error) {
	var summary EmployeeSummary
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, full_name, department, position").
		Where("id = ?", employeeID).
		First(&summary).Error
	return &summary, err
}

func (r *repository) FindPeriodByID(ctx context.Context, periodID string) (*PeriodInfo, error) {
	var info PeriodInfo
	err := r.db.WithContext(ctx).
		Table("payroll_periods").
		Select("id, year, month, period_start, period_end, is_closed").
		Where("id = ?", periodID).
		First(&info).Error
	return &info, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasRecord(ctx context.Context, employeeID string, periodID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Where("employee_id = ? AND payroll_period_id = ?", employeeID, periodID).
		Count(&count).Error
	return count > 0, err
}
