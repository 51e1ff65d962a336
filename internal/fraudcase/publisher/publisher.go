// Package publisher emits submission outcome events to Kafka. Events are
// informational; nothing in this service consumes them.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"casebridge/internal/fraudcase/models"
	"casebridge/internal/platform/kafka/producer"
)

const (
	EventType     = "fraudcase.submission"
	SchemaVersion = "1"
)

// Producer is the subset of *producer.Producer used here.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// Event is the JSON body of an outcome record. The order id is also the
// record key so events for one order land on one partition.
type Event struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	CaseID     string    `json:"case_id,omitempty"`
	Category   string    `json:"category,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Kafka struct {
	producer Producer
	topic    string
	newID    func() string
}

func NewKafka(p Producer, topic string) *Kafka {
	return &Kafka{producer: p, topic: topic, newID: uuid.NewString}
}

// PublishSubmission writes one event for result.
func (k *Kafka) PublishSubmission(ctx context.Context, result models.SubmissionResult) error {
	event := Event{
		EventID:    k.newID(),
		OrderID:    result.OrderID,
		Status:     string(result.Status),
		CaseID:     result.CaseID,
		Category:   result.Category,
		Reason:     result.Reason,
		OccurredAt: result.SubmittedAt.UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal submission event: %w", err)
	}
	err = k.producer.Produce(ctx, &producer.Message{
		Topic: k.topic,
		Key:   []byte(result.OrderID),
		Value: body,
		Headers: map[string]string{
			"event_type":     EventType,
			"event_id":       event.EventID,
			"schema_version": SchemaVersion,
		},
	})
	if err != nil {
		return fmt.Errorf("publish submission event: %w", err)
	}
	return nil
}
