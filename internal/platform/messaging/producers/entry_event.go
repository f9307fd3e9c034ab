package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/cashflow-service/internal/config"
)

// Audit event actions published for manual cash entries.
const (
	EntryEventCreated = "entry.created"
	EntryEventDeleted = "entry.deleted"
)

// EntryEvent is the audit record published when a manual cash entry changes.
type EntryEvent struct {
	Action     string    `json:"action"`
	EntryID    uuid.UUID `json:"entry_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EntryEventProducer struct {
	logger *slog.Logger
	writer KafkaWriter // Interface for testability
	topic  string
}

// Creates a new audit event producer and ensures the topic exists
func NewEntryEventProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*EntryEventProducer, error) {
	if cfg.EntryEventsTopic == "" {
		return nil, fmt.Errorf("kafka entry events topic is not configured")
	}

	conn, err := kafka.Dial("tcp", cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kafka for entry event producer: %w", err)
	}
	defer conn.Close()

	err = createKafkaTopicIfNotExists(conn, cfg.EntryEventsTopic, cfg.NumPartitions, cfg.ReplicationFactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure entry events topic %s exists: %w", cfg.EntryEventsTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.EntryEventsTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true, // Audit events never block the request path
		WriteTimeout: cfg.WriteTimeout,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to write audit events asynchronously", "topic", cfg.EntryEventsTopic, "error", err, "count", len(messages))
			} else {
				logger.Debug("Successfully wrote audit events asynchronously", "topic", cfg.EntryEventsTopic, "count", len(messages))
			}
		},
	}

	return &EntryEventProducer{
		logger: logger,
		writer: writer,
		topic:  cfg.EntryEventsTopic,
	}, nil
}

func (p *EntryEventProducer) Publish(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event value: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: jsonValue,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish audit event",
			"topic", p.topic,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to publish audit event to %s: %w", p.topic, err)
	}

	p.logger.Debug("Published audit event",
		"topic", p.topic,
		"key", key,
	)
	return nil
}

func (p *EntryEventProducer) Close() error {
	p.logger.Info("Closing entry event Kafka producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}
