package inventory

import (
	"context"
	"errors"
	"time"

	"pos-service/internal/domain"
	"pos-service/internal/events"
	"pos-service/internal/ledger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AddItemCommand registers a new item or restocks an existing one
type AddItemCommand struct {
	Code     string
	Name     string
	Price    decimal.Decimal
	Details  string
	Quantity int
}

// Stats summarizes the inventory
type Stats struct {
	Count         int
	TotalQuantity int
	TotalValue    decimal.Decimal
}

// Service implements inventory operations on top of the items ledger
type Service struct {
	store     ledger.Store
	publisher events.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store ledger.Store, publisher events.EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// AddOrRestock creates the item when its code is new, otherwise adds the
// quantity to the stored item. created reports which of the two happened.
func (s *Service) AddOrRestock(ctx context.Context, cmd AddItemCommand) (domain.Item, bool, error) {
	candidate, err := domain.NewItem(cmd.Code, cmd.Name, cmd.Price, cmd.Details, cmd.Quantity, s.now())
	if err != nil {
		return domain.Item{}, false, err
	}

	var result domain.Item
	created := false

	err = s.store.Update(ctx, ledger.Items, func(records []ledger.Record) ([]ledger.Record, error) {
		items, err := decodeItems(records)
		if err != nil {
			return nil, err
		}

		for i := range items {
			if items[i].Code != candidate.Code {
				continue
			}
			if err := items[i].Restock(candidate.Quantity); err != nil {
				return nil, err
			}
			result = items[i]
			return encodeItems(items), nil
		}

		created = true
		result = *candidate
		return append(records, ledger.Record(candidate.Record())), nil
	})
	if err != nil {
		return domain.Item{}, false, err
	}

	if created {
		s.logger.Info("Item created",
			zap.String("barcode", result.Code),
			zap.String("name", result.Name),
			zap.Int("quantity", result.Quantity),
		)
		s.publish(ctx, events.ItemCreatedEvent{
			Code:       result.Code,
			Name:       result.Name,
			Price:      result.UnitPrice.String(),
			Quantity:   result.Quantity,
			OccurredAt: s.now(),
		})
	} else {
		s.logger.Info("Item restocked",
			zap.String("barcode", result.Code),
			zap.Int("added", candidate.Quantity),
			zap.Int("new_total", result.Quantity),
		)
		s.publish(ctx, events.ItemRestockedEvent{
			Code:       result.Code,
			Added:      candidate.Quantity,
			NewTotal:   result.Quantity,
			OccurredAt: s.now(),
		})
	}

	return result, created, nil
}

// SetQuantity overwrites the stock of an existing item
func (s *Service) SetQuantity(ctx context.Context, code string, quantity int) (domain.Item, error) {
	if quantity < 0 {
		return domain.Item{}, domain.NewValidationError("quantity", "quantity cannot be negative")
	}

	var result domain.Item
	previous := 0

	err := s.store.Update(ctx, ledger.Items, func(records []ledger.Record) ([]ledger.Record, error) {
		items, err := decodeItems(records)
		if err != nil {
			return nil, err
		}

		for i := range items {
			if items[i].Code != code {
				continue
			}
			previous = items[i].Quantity
			if err := items[i].SetQuantity(quantity); err != nil {
				return nil, err
			}
			result = items[i]
			return encodeItems(items), nil
		}
		return nil, domain.ErrItemNotFound
	})
	if err != nil {
		return domain.Item{}, err
	}

	s.logger.Info("Item quantity set",
		zap.String("barcode", code),
		zap.Int("previous", previous),
		zap.Int("quantity", quantity),
	)
	s.publish(ctx, events.ItemQuantitySetEvent{
		Code:       code,
		Previous:   previous,
		Quantity:   quantity,
		OccurredAt: s.now(),
	})

	return result, nil
}

// Delete removes an item from the inventory
func (s *Service) Delete(ctx context.Context, code string) error {
	err := s.store.Update(ctx, ledger.Items, func(records []ledger.Record) ([]ledger.Record, error) {
		kept := make([]ledger.Record, 0, len(records))
		found := false
		for _, rec := range records {
			if rec[0] == code {
				found = true
				continue
			}
			kept = append(kept, rec)
		}
		if !found {
			return nil, domain.ErrItemNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Item deleted", zap.String("barcode", code))
	s.publish(ctx, events.ItemDeletedEvent{Code: code, OccurredAt: s.now()})
	return nil
}

// Get returns one item by barcode
func (s *Service) Get(ctx context.Context, code string) (domain.Item, error) {
	rec, err := s.store.Find(ctx, ledger.Items, code)
	if errors.Is(err, ledger.ErrNotFound) {
		return domain.Item{}, domain.ErrItemNotFound
	}
	if err != nil {
		return domain.Item{}, err
	}

	item, err := domain.ItemFromRecord(rec)
	if err != nil {
		return domain.Item{}, &ledger.StoreError{Kind: ledger.Items, Op: "parse", Err: err}
	}
	return item, nil
}

// List returns every item in ledger order
func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	records, err := s.store.ReadAll(ctx, ledger.Items)
	if err != nil {
		return nil, err
	}
	return decodeItems(records)
}

// Stats returns item count, total units and total stock value
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	items, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalValue: decimal.Zero}
	for _, item := range items {
		stats.Count++
		stats.TotalQuantity += item.Quantity
		stats.TotalValue = stats.TotalValue.Add(item.StockValue())
	}
	return stats, nil
}

// publish logs failures and never fails the caller
func (s *Service) publish(ctx context.Context, event interface{}) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", zap.Error(err))
	}
}

func decodeItems(records []ledger.Record) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(records))
	for _, rec := range records {
		item, err := domain.ItemFromRecord(rec)
		if err != nil {
			return nil, &ledger.StoreError{Kind: ledger.Items, Op: "parse", Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

func encodeItems(items []domain.Item) []ledger.Record {
	records := make([]ledger.Record, 0, len(items))
	for _, item := range items {
		records = append(records, ledger.Record(item.Record()))
	}
	return records
}
