package events

import "time"

const PayrollRecordCreatedTopic = "payroll.record.created.v1"

type PayrollRecordCreatedEvent struct {
	EventType       string    `json:"event_type"`
	PayrollRecordID string    `json:"payroll_record_id"`
	EmployeeID      string    `json:"employee_id"`
	PayrollPeriodID string    `json:"payroll_period_id"`
	GrossSalary     string    `json:"gross_salary"`
	NetSalary       string    `json:"net_salary"`
	OccurredAt      time.Time `json:"occurred_at"`
}
