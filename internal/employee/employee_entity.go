package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_employee_number"`
	FullName       string    `gorm:"type:varchar(120);not null"`
	Position       string    `gorm:"type:varchar(120);not null"`
	Department     string    `gorm:"type:varchar(120);not null;index"`
	StartDate      time.Time `gorm:"type:date;not null"`
	BankAccount    string    `gorm:"type:varchar(60);not null"`
	Email          string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_employee_email"`
	Phone          string    `gorm:"type:varchar(30);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}
