package kafka

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{
		ID:      uuid.New().String(),
		Topic:   "attendance.employee.lifecycle.v1",
		Payload: []byte(`{"event_type":"employee_created"}`),
		Status:  OutboxStatusPending,
	}
	assert.NoError(t, ValidateOutboxEvent(valid))

	missingID := valid
	missingID.ID = ""
	assert.Error(t, ValidateOutboxEvent(missingID))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(missingTopic))

	emptyPayload := valid
	emptyPayload.Payload = nil
	assert.Error(t, ValidateOutboxEvent(emptyPayload))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}

func TestNewPendingEvent(t *testing.T) {
	payload := []byte(`{"event_type":"request_resolved"}`)
	event := NewPendingEvent("attendance_request", "agg-1", "request_resolved", "attendance.request.lifecycle.v1", "req-123", payload)

	assert.NoError(t, ValidateOutboxEvent(event))
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, OutboxStatusPending, event.Status)
	assert.Equal(t, "attendance_request", event.AggregateType)
	assert.Equal(t, "agg-1", event.AggregateID)
	assert.Equal(t, "req-123", event.RequestID)
	assert.Equal(t, payload, event.Payload)
}
