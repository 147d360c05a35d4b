package events

import "time"

const RequestResolvedTopic = "attendance.request.lifecycle.v1"

// RequestResolvedEvent dipublish saat admin approve/reject permintaan
// koreksi. RequestID adalah ID permintaan yang diputus, bukan trace id
// HTTP (trace id ikut di kolom outbox dan header Kafka).
type RequestResolvedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id"`
	EmployeeCode string    `json:"employee_code"`
	Date         string    `json:"date"`
	Decision     string    `json:"decision"`
	ResolvedBy   string    `json:"resolved_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
