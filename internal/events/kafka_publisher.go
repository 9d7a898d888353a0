package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pos-service/internal/config"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	publishAttempts  = 3
	publishBaseDelay = 100 * time.Millisecond
)

// KafkaEventPublisher implements EventPublisher using Kafka
type KafkaEventPublisher struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
	config   *config.Config
}

// NewKafkaEventPublisher creates a new Kafka event publisher
func NewKafkaEventPublisher(cfg *config.Config, logger *zap.Logger) (*KafkaEventPublisher, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.ClientID = cfg.KafkaClientID
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Retry.Max = cfg.KafkaRetries
	saramaCfg.Producer.Idempotent = true
	saramaCfg.Net.MaxOpenRequests = 1

	// Idempotent producers require acks=all
	switch cfg.KafkaAcks {
	case "0", "1":
		saramaCfg.Producer.Idempotent = false
		saramaCfg.Net.MaxOpenRequests = 5
		if cfg.KafkaAcks == "0" {
			saramaCfg.Producer.RequiredAcks = sarama.NoResponse
		} else {
			saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
		}
	default:
		saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	}

	producer, err := sarama.NewSyncProducer(cfg.KafkaBrokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return NewKafkaEventPublisherWithProducer(producer, cfg, logger), nil
}

// NewKafkaEventPublisherWithProducer wraps an existing producer
func NewKafkaEventPublisherWithProducer(producer sarama.SyncProducer, cfg *config.Config, logger *zap.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		logger:   logger,
		config:   cfg,
	}
}

// Publish sends an event to Kafka with retries and exponential backoff
func (p *KafkaEventPublisher) Publish(ctx context.Context, event interface{}) error {
	topic, err := p.topicForEvent(event)
	if err != nil {
		return fmt.Errorf("failed to determine topic: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(eventType(event))},
			{Key: []byte("event-id"), Value: []byte(uuid.New().String())},
			{Key: []byte("timestamp"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}
	if key := partitionKey(event); key != "" {
		message.Key = sarama.StringEncoder(key)
	}

	var lastErr error
	for attempt := 0; attempt < publishAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled: %w", err)
		}

		partition, offset, err := p.producer.SendMessage(message)
		if err == nil {
			p.logger.Info("Event published to Kafka",
				zap.String("topic", topic),
				zap.Int32("partition", partition),
				zap.Int64("offset", offset),
				zap.String("event-type", eventType(event)),
				zap.Int("attempt", attempt+1),
			)
			return nil
		}

		lastErr = err
		p.logger.Warn("Failed to publish event to Kafka, retrying",
			zap.String("topic", topic),
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", publishAttempts),
		)

		if attempt < publishAttempts-1 {
			delay := publishBaseDelay * time.Duration(1<<uint(attempt))
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("failed to publish event to Kafka after %d attempts: %w", publishAttempts, lastErr)
}

// Close closes the Kafka producer
func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

func (p *KafkaEventPublisher) topicForEvent(event interface{}) (string, error) {
	switch event.(type) {
	case ItemCreatedEvent, ItemRestockedEvent, ItemQuantitySetEvent, ItemDeletedEvent:
		return p.config.KafkaTopicItems, nil
	case SaleCompletedEvent:
		return p.config.KafkaTopicSales, nil
	default:
		return "", fmt.Errorf("unknown event type: %T", event)
	}
}

// New returns a Kafka publisher when USE_KAFKA is set and the brokers are
// reachable, otherwise the in-memory publisher.
func New(cfg *config.Config, logger *zap.Logger) EventPublisher {
	if !cfg.UseKafka {
		logger.Info("Kafka disabled, using in-memory event publisher")
		return NewEventPublisher(logger)
	}

	publisher, err := NewKafkaEventPublisher(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Kafka publisher, using in-memory fallback", zap.Error(err))
		return NewEventPublisher(logger)
	}
	return publisher
}
