package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"pos-service/internal/domain"
	"pos-service/internal/events"
	"pos-service/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SaleLine is one requested line of a sale
type SaleLine struct {
	Code     string
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// SaleCommand carries a whole cart
type SaleCommand struct {
	CustomerName string
	ProcessedBy  string
	Lines        []SaleLine
	// ClientTotal is the total computed by the client, if any
	ClientTotal *decimal.Decimal
}

// Service processes sales against the items and transactions ledgers
type Service struct {
	store     ledger.Store
	publisher events.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

func NewService(store ledger.Store, publisher events.EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// ProcessSale validates every line against current stock and either commits
// the whole sale or nothing. On success one Transaction is appended with one
// ledger row per line.
func (s *Service) ProcessSale(ctx context.Context, cmd SaleCommand) (domain.Transaction, error) {
	if err := validate(cmd); err != nil {
		return domain.Transaction{}, err
	}
	cmd.Lines = normalize(cmd.Lines)

	requested := make(map[string]int)
	order := make([]string, 0)
	for _, line := range cmd.Lines {
		if _, seen := requested[line.Code]; !seen {
			order = append(order, line.Code)
		}
		requested[line.Code] += line.Quantity
	}

	var lines []domain.LineItem

	err := s.store.Update(ctx, ledger.Items, func(records []ledger.Record) ([]ledger.Record, error) {
		items, err := parseItems(records)
		if err != nil {
			return nil, err
		}
		index := make(map[string]int, len(items))
		for i, item := range items {
			index[item.Code] = i
		}

		var shortages []domain.StockShortage
		for _, code := range order {
			available := 0
			name := nameFor(cmd.Lines, code)
			if i, ok := index[code]; ok {
				available = items[i].Quantity
				if name == "" {
					name = items[i].Name
				}
			}
			if requested[code] > available {
				shortages = append(shortages, domain.StockShortage{
					Code:      code,
					Name:      name,
					Requested: requested[code],
					Available: available,
				})
			}
		}
		if len(shortages) > 0 {
			return nil, &domain.InsufficientStockError{Shortages: shortages}
		}

		for _, code := range order {
			if err := items[index[code]].Decrement(requested[code]); err != nil {
				return nil, err
			}
		}

		lines = make([]domain.LineItem, 0, len(cmd.Lines))
		for _, line := range cmd.Lines {
			name := line.Name
			if name == "" {
				name = items[index[line.Code]].Name
			}
			lines = append(lines, domain.LineItem{
				ItemName:  name,
				Quantity:  line.Quantity,
				UnitPrice: line.Price,
			})
		}

		return encodeItems(items), nil
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			s.logger.Warn("Sale rejected, insufficient stock",
				zap.String("customer", cmd.CustomerName),
				zap.Int("short_lines", len(insufficient.Shortages)),
			)
		}
		return domain.Transaction{}, err
	}

	tx := domain.Transaction{
		ID:           s.newID(),
		CustomerName: strings.TrimSpace(cmd.CustomerName),
		Date:         s.now(),
		ProcessedBy:  cmd.ProcessedBy,
		Lines:        lines,
	}

	rows := tx.Records()
	records := make([]ledger.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, ledger.Record(row))
	}

	if err := s.store.Append(ctx, ledger.Transactions, records...); err != nil {
		s.logger.Error("Failed to append transaction, restoring stock",
			zap.String("transaction_id", tx.ID),
			zap.Error(err),
		)
		if restoreErr := s.restock(context.WithoutCancel(ctx), requested); restoreErr != nil {
			s.logger.Error("Failed to restore stock after failed sale",
				zap.String("transaction_id", tx.ID),
				zap.Error(restoreErr),
			)
		}
		return domain.Transaction{}, err
	}

	total := tx.Total()
	if cmd.ClientTotal != nil && !cmd.ClientTotal.Equal(total) {
		s.logger.Warn("Client total differs from computed total",
			zap.String("transaction_id", tx.ID),
			zap.String("client_total", cmd.ClientTotal.String()),
			zap.String("total", total.String()),
		)
	}

	s.logger.Info("Sale completed",
		zap.String("transaction_id", tx.ID),
		zap.String("customer", tx.CustomerName),
		zap.Int("lines", len(tx.Lines)),
		zap.String("total", total.String()),
	)

	saleLines := make([]events.SaleLine, 0, len(cmd.Lines))
	for i, line := range cmd.Lines {
		saleLines = append(saleLines, events.SaleLine{
			Code:      line.Code,
			ItemName:  tx.Lines[i].ItemName,
			Quantity:  line.Quantity,
			UnitPrice: line.Price.String(),
		})
	}
	if err := s.publisher.Publish(ctx, events.SaleCompletedEvent{
		TransactionID: tx.ID,
		CustomerName:  tx.CustomerName,
		ProcessedBy:   tx.ProcessedBy,
		Lines:         saleLines,
		Total:         total.String(),
		OccurredAt:    tx.Date,
	}); err != nil {
		s.logger.Error("Failed to publish event", zap.Error(err))
	}

	return tx, nil
}

// ListTransactions returns every transaction, newest first
func (s *Service) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	records, err := s.store.ReadAll(ctx, ledger.Transactions)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec)
	}

	transactions, err := domain.TransactionsFromRecords(rows)
	if err != nil {
		return nil, &ledger.StoreError{Kind: ledger.Transactions, Op: "parse", Err: err}
	}
	return transactions, nil
}

func validate(cmd SaleCommand) error {
	if strings.TrimSpace(cmd.CustomerName) == "" {
		return domain.NewValidationError("customer_name", "customer name is required")
	}
	if len(cmd.Lines) == 0 {
		return domain.NewValidationError("items", "no items in bill")
	}
	for _, line := range cmd.Lines {
		if strings.TrimSpace(line.Code) == "" {
			return domain.NewValidationError("barcode", "every item needs a barcode")
		}
		if line.Quantity < 1 {
			return domain.NewValidationError("quantity", "quantity must be at least 1")
		}
		if line.Price.IsNegative() {
			return domain.NewValidationError("price", "price must be a non-negative number")
		}
	}
	return nil
}

func normalize(lines []SaleLine) []SaleLine {
	out := make([]SaleLine, len(lines))
	for i, line := range lines {
		line.Code = strings.TrimSpace(line.Code)
		line.Name = strings.TrimSpace(line.Name)
		out[i] = line
	}
	return out
}

func nameFor(lines []SaleLine, code string) string {
	for _, line := range lines {
		if line.Code == code && line.Name != "" {
			return line.Name
		}
	}
	return ""
}

// restock puts sold quantities back onto the current stock. Items deleted
// since the sale are skipped.
func (s *Service) restock(ctx context.Context, requested map[string]int) error {
	return s.store.Update(ctx, ledger.Items, func(records []ledger.Record) ([]ledger.Record, error) {
		items, err := parseItems(records)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if quantity, ok := requested[items[i].Code]; ok {
				if err := items[i].Restock(quantity); err != nil {
					return nil, err
				}
			}
		}
		return encodeItems(items), nil
	})
}

func parseItems(records []ledger.Record) ([]domain.Item, error) {
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
