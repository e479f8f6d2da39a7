package payroll

import (
	"go-payroll/internal/shared/patch"

	"github.com/shopspring/decimal"
)

type CreateRecordRequest struct {
	EmployeeID      string           `json:"employee_id" binding:"required,uuid"`
	PayrollPeriodID string           `json:"payroll_period_id" binding:"required,uuid"`
	OvertimeHours   *decimal.Decimal `json:"overtime_hours"`
	OvertimeAmount  *decimal.Decimal `json:"overtime_amount"`
	BonusAmount     *decimal.Decimal `json:"bonus_amount"`
	AttendanceDays  *int             `json:"attendance_days"`
}

// UpdateRecordRequest membedakan field yang tidak dikirim (nilai lama
// dipertahankan) dari field yang dikirim null (nilai dikosongkan).
type UpdateRecordRequest struct {
	OvertimeHours  patch.Field[decimal.Decimal] `json:"overtime_hours"`
	OvertimeAmount patch.Field[decimal.Decimal] `json:"overtime_amount"`
	BonusAmount    patch.Field[decimal.Decimal] `json:"bonus_amount"`
	AttendanceDays patch.Field[int]             `json:"attendance_days"`
}

type RecordResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	PayrollPeriodID string  `json:"payroll_period_id"`
	BaseSalary      string  `json:"base_salary"`
	TotalAllowances string  `json:"total_allowances"`
	TotalDeductions string  `json:"total_deductions"`
	OvertimeHours   *string `json:"overtime_hours"`
	OvertimeAmount  *string `json:"overtime_amount"`
	BonusAmount     *string `json:"bonus_amount"`
	AttendanceDays  *int    `json:"attendance_days"`
	GrossSalary     string  `json:"gross_salary"`
	NetSalary       string  `json:"net_salary"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type DetailResponse struct {
	ID                string `json:"id"`
	SalaryComponentID string `json:"salary_component_id"`
	ComponentName     string `json:"component_name"`
	ComponentType     string `json:"component_type"`
	Amount            string `json:"amount"`
}

type RecordWithDetailsResponse struct {
	Record   RecordResponse   `json:"record"`
	Employee EmployeeSummary  `json:"employee"`
	Period   PeriodSummary    `json:"period"`
	Details  []DetailResponse `json:"details"`
}

type EmployeeSummary struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type PeriodSummary struct {
	ID          string `json:"id"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	IsClosed    bool   `json:"is_closed"`
}
