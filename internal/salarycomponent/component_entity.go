package salarycomponent

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeBaseSalary = "base_salary"
	TypeAllowance  = "allowance"
	TypeDeduction  = "deduction"
)

// SalaryComponent adalah definisi komponen gaji bertipe. Tipe menentukan
// bucket agregasi: base_salary dan allowance menambah gross, deduction
// mengurangi net.
type SalaryComponent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SalaryComponent) TableName() string {
	return "salary_components"
}

func ValidType(t string) bool {
	switch t {
	case TypeBaseSalary, TypeAllowance, TypeDeduction:
		return true
	}
	return false
}
