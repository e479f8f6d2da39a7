package payroll

import (
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/salarycomponent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollRecord adalah hasil perhitungan gaji satu karyawan untuk satu
// periode. base_salary/total_allowances/total_deductions adalah SNAPSHOT
// dari assignment saat record dibuat; perubahan assignment sesudahnya
// tidak pernah mengubah record yang sudah ada.
//
// Nominal disimpan sebagai numeric(15,2), bukan float, supaya agregasi
// tidak terkena floating point drift.
type PayrollRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_period"`
	PayrollPeriodID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_period"`

	BaseSalary      decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	TotalAllowances decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(15,2);not null"`

	// Penyesuaian variabel, nullable. Diisi belakangan lewat update.
	OvertimeHours  decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	OvertimeAmount decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	BonusAmount    decimal.NullDecimal `gorm:"type:numeric(15,2)"`
	AttendanceDays *int

	GrossSalary decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	NetSalary   decimal.Decimal `gorm:"type:numeric(15,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Hapus record (atau karyawannya) ikut menghapus detail
	Details  []PayrollDetail   `gorm:"foreignKey:PayrollRecordID;constraint:OnDelete:CASCADE"`
	Employee employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}

// PayrollDetail adalah jejak audit: satu baris per komponen yang ikut
// membentuk total record. Dibuat bersama record, tidak pernah diubah.
type PayrollDetail struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollRecordID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	SalaryComponentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount            decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	CreatedAt         time.Time

	SalaryComponent salarycomponent.SalaryComponent `gorm:"foreignKey:SalaryComponentID;constraint:OnDelete:CASCADE"`
}

func (PayrollDetail) TableName() string {
	return "payroll_details"
}

// PeriodInfo adalah proyeksi ringan payroll_periods untuk validasi.
type PeriodInfo struct {
	ID          uuid.UUID
	Year        int
	Month       int
	PeriodStart time.Time
	PeriodEnd   time.Time
	IsClosed    bool
}

// EmployeeRef dipakai bulk processor untuk enumerasi kandidat.
type EmployeeRef struct {
	ID       uuid.UUID
	FullName string
}

// DetailWithComponent adalah hasil join detail × komponen untuk payslip.
type DetailWithComponent struct {
	ID                uuid.UUID
	SalaryComponentID uuid.UUID
	Amount            decimal.Decimal
	ComponentName     string
	ComponentType     string
}
