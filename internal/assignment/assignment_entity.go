package assignment

import (
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/salarycomponent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeSalaryComponent adalah konfigurasi gaji yang hidup: binding satu
// komponen ke satu karyawan dengan nominal tertentu. Bukan data historis;
// snapshot historis ada di payroll_records.
type EmployeeSalaryComponent struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_employee_component"`
	SalaryComponentID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_employee_component"`
	Amount            decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// FK dengan cascade: hapus karyawan atau komponen ikut menghapus
	// assignment-nya
	Employee        employee.Employee               `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	SalaryComponent salarycomponent.SalaryComponent `gorm:"foreignKey:SalaryComponentID;constraint:OnDelete:CASCADE"`
}

func (EmployeeSalaryComponent) TableName() string {
	return "employee_salary_components"
}

// AssignmentWithComponent adalah hasil join untuk tampilan per karyawan.
type AssignmentWithComponent struct {
	ID                uuid.UUID
	EmployeeID        uuid.UUID
	SalaryComponentID uuid.UUID
	Amount            decimal.Decimal
	ComponentName     string
	ComponentType     string
}
