package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
	Close() error
}

// Inventory domain events
type ItemCreatedEvent struct {
	Code       string    `json:"barcode"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ItemRestockedEvent struct {
	Code       string    `json:"barcode"`
	Added      int       `json:"added"`
	NewTotal   int       `json:"new_total"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ItemQuantitySetEvent struct {
	Code       string    `json:"barcode"`
	Previous   int       `json:"previous"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ItemDeletedEvent struct {
	Code       string    `json:"barcode"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sales domain events
type SaleLine struct {
	Code      string `json:"barcode"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type SaleCompletedEvent struct {
	TransactionID string     `json:"transaction_id"`
	CustomerName  string     `json:"customer_name"`
	ProcessedBy   string     `json:"processed_by"`
	Lines         []SaleLine `json:"lines"`
	Total         string     `json:"total"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// InMemoryEventPublisher keeps published events in memory. It is used when
// Kafka is disabled or unreachable.
type InMemoryEventPublisher struct {
	logger *zap.Logger
	mu     sync.Mutex
	events []interface{}
}

func NewEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		logger: logger,
		events: make([]interface{}, 0),
	}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()

	p.logger.Debug("Event published (in-memory)", zap.String("event-type", eventType(event)))
	return nil
}

// Events returns a copy of everything published so far
func (p *InMemoryEventPublisher) Events() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]interface{}, len(p.events))
	copy(out, p.events)
	return out
}

func (p *InMemoryEventPublisher) Close() error {
	return nil
}

// eventType returns the event type as string
func eventType(event interface{}) string {
	switch event.(type) {
	case ItemCreatedEvent:
		return "ItemCreated"
	case ItemRestockedEvent:
		return "ItemRestocked"
	case ItemQuantitySetEvent:
		return "ItemQuantitySet"
	case ItemDeletedEvent:
		return "ItemDeleted"
	case SaleCompletedEvent:
		return "SaleCompleted"
	default:
		return "Unknown"
	}
}

// partitionKey returns the barcode for item events and the transaction id for sales
func partitionKey(event interface{}) string {
	switch e := event.(type) {
	case ItemCreatedEvent:
		return e.Code
	case ItemRestockedEvent:
		return e.Code
	case ItemQuantitySetEvent:
		return e.Code
	case ItemDeletedEvent:
		return e.Code
	case SaleCompletedEvent:
		return e.TransactionID
	}
	return ""
}
