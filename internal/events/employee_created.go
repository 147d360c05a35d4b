package events

import "time"

const EmployeeCreatedTopic = "attendance.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeCode string    `json:"employee_code"`
	Department   string    `json:"department"`
	OccurredAt   time.Time `json:"occurred_at"`
}
