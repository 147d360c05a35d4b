package producer

import (
	"context"

	"go-attendance/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// publish mengirim satu outbox event; key = aggregate ID supaya event
// untuk karyawan yang sama tetap berurutan dalam satu partisi.
func (w *Worker) publish(ctx context.Context, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}

	return w.writer.WriteMessages(ctx, msg)
}
