package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/digitalt3/lms-core-api/internal/config"
)

// ResourceEventsTopic carries resource lifecycle events.
const ResourceEventsTopic = "lms.resource.events"

// Event is the envelope published for every resource lifecycle change.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Source     string    `json:"source"`
	Version    string    `json:"version"`
	Timestamp  time.Time `json:"timestamp"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	Data       any       `json:"data,omitempty"`
}

// NewEvent builds a lifecycle event for a resource and action
// ("created", "updated", "deleted").
func NewEvent(resource, action, resourceID string, data any) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       fmt.Sprintf("%s.%s", resource, action),
		Source:     config.ServiceName,
		Version:    "1.0",
		Timestamp:  time.Now().UTC(),
		Resource:   resource,
		ResourceID: resourceID,
		Data:       data,
	}
}

// Publisher publishes resource lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// KafkaPublisher publishes events to Kafka via watermill.
type KafkaPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
}

func NewKafkaPublisher(brokers []string, logger *slog.Logger) (*KafkaPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return &KafkaPublisher{publisher: publisher, logger: logger}, nil
}

func (p *KafkaPublisher) Publish(_ context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", event.Type)
	msg.Metadata.Set("resource", event.Resource)

	if err := p.publisher.Publish(ResourceEventsTopic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.publisher.Close()
}

// NoopPublisher drops events; used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (*NoopPublisher) Publish(context.Context, Event) error { return nil }

func (*NoopPublisher) Close() error { return nil }
