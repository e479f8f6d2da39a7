package events

import "time"

const PayrollPeriodClosedTopic = "payroll.period.closed.v1"

type PayrollPeriodClosedEvent struct {
	EventType       string    `json:"event_type"`
	PayrollPeriodID string    `json:"payroll_period_id"`
	Year            int       `json:"year"`
	Month           int       `json:"month"`
	OccurredAt      time.Time `json:"occurred_at"`
}
