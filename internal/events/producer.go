// internal/events/producer.go

// Package events publishes workflow events to kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/mubadara/internal/moderation"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the producer needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher is the interface used by services to publish events.
type Publisher interface {
	Publish(ctx context.Context, key string, value any) error
	Close() error
}

// StatusEvent is the payload of a moderation event.
type StatusEvent struct {
	Event          string     `json:"event"`
	Kind           string     `json:"kind"`
	ID             uuid.UUID  `json:"id"`
	From           string     `json:"from,omitempty"`
	Status         string     `json:"status"`
	Reason         string     `json:"reason,omitempty"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	ActorID        *uuid.UUID `json:"actor_id,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// KafkaProducer writes JSON events keyed by entity id, so every event of one
// entity lands on the same partition.
type KafkaProducer struct {
	writer Writer
	logger *slog.Logger
}

func NewKafkaProducer(brokers []string, topic string, logger *slog.Logger) *KafkaProducer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return NewKafkaProducerWithWriter(w, logger)
}

// NewKafkaProducerWithWriter allows injecting a test writer.
func NewKafkaProducerWithWriter(w Writer, logger *slog.Logger) *KafkaProducer {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaProducer{writer: w, logger: logger}
}

// Publish marshals value to JSON and writes it under key.
func (p *KafkaProducer) Publish(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: b}); err != nil {
		p.logger.ErrorContext(ctx, "kafka write failed", "key", key, "error", err)
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

// Notify implements moderation.Notifier.
func (p *KafkaProducer) Notify(ctx context.Context, eventKind string, subject workflow.Subject) error {
	return p.Publish(ctx, subject.SubjectID().String(), StatusEvent{
		Event:          eventKind,
		ID:             subject.SubjectID(),
		Status:         string(subject.CurrentStatus()),
		OwnerID:        subject.OwnerRef(),
		OrganizationID: subject.OrganizationRef(),
		OccurredAt:     subject.LastUpdated(),
	})
}

// Hook publishes the full transition, including the source status, the actor
// and the reason.
func (p *KafkaProducer) Hook() moderation.Hook {
	return func(ctx context.Context, e moderation.Event) error {
		actor := e.Actor.UserID
		return p.Publish(ctx, e.Subject.SubjectID().String(), StatusEvent{
			Event:          e.Name(),
			Kind:           string(e.Kind),
			ID:             e.Subject.SubjectID(),
			From:           string(e.From),
			Status:         string(e.To),
			Reason:         e.Reason,
			OwnerID:        e.Subject.OwnerRef(),
			OrganizationID: e.Subject.OrganizationRef(),
			ActorID:        &actor,
			OccurredAt:     e.At,
		})
	}
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// Discard is a Publisher that drops every event. It is used when no brokers
// are configured.
type Discard struct{}

func (Discard) Publish(context.Context, string, any) error { return nil }
func (Discard) Close() error { return nil }
