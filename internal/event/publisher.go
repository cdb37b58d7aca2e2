package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const exchangeName = "talent.events"

// Routing keys for the talent.events topic exchange.
const (
	TypeAffinityBatchCompleted  = "affinity.batch.completed"
	TypeEvaluationStatusChanged = "evaluation.status.changed"
	TypeAssignmentCreated       = "assignment.created"
)

// Event is the envelope published to the topic exchange. EventType doubles
// as the routing key.
type Event struct {
	EventType string         `json:"event_type"`
	SubjectID string         `json:"subject_id"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(event *Event) error
	Close() error
}

// RabbitPublisher publishes events to a durable RabbitMQ topic exchange.
// With an empty URI it starts in disabled mode and drops events silently.
type RabbitPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	enabled  bool
	logger   *zap.Logger
}

func NewRabbitPublisher(amqpURI string, logger *zap.Logger) (*RabbitPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if amqpURI == "" {
		logger.Warn("amqp uri is empty, event publishing is disabled")
		return &RabbitPublisher{exchange: exchangeName, logger: logger}, nil
	}

	conn, err := amqp091.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	logger.Info("event publisher initialized", zap.String("exchange", exchangeName))

	return &RabbitPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchangeName,
		enabled:  true,
		logger:   logger,
	}, nil
}

func (p *RabbitPublisher) Publish(event *Event) error {
	if event == nil {
		return nil
	}
	if !p.enabled {
		p.logger.Debug("event publishing disabled, dropping event",
			zap.String("event_type", event.EventType))
		return nil
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.channel.Publish(
		p.exchange,
		event.EventType,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.Timestamp,
			Body:         body,
			Headers: amqp091.Table{
				"event_type": event.EventType,
				"subject_id": event.SubjectID,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.Info("published event",
		zap.String("event_type", event.EventType),
		zap.String("subject_id", event.SubjectID))
	return nil
}

func (p *RabbitPublisher) Close() error {
	if !p.enabled {
		return nil
	}

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Warn("closing rabbitmq channel", zap.Error(err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}

// MockPublisher records events in memory for tests.
type MockPublisher struct {
	Events []Event
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{Events: make([]Event, 0)}
}

func (m *MockPublisher) Publish(event *Event) error {
	if event != nil {
		m.Events = append(m.Events, *event)
	}
	return nil
}

func (m *MockPublisher) Close() error { return nil }
