package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Item is an inventory record keyed by its barcode
type Item struct {
	Code      string
	Name      string
	UnitPrice decimal.Decimal
	Details   string
	CreatedAt time.Time
	Quantity  int
}

// NewItem validates and creates a new inventory item
func NewItem(code, name string, price decimal.Decimal, details string, quantity int, now time.Time) (*Item, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	if code == "" {
		return nil, NewValidationError("barcode", "barcode is required")
	}
	if name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if price.IsNegative() {
		return nil, NewValidationError("price", "price must be a non-negative number")
	}
	if quantity < 1 {
		return nil, NewValidationError("quantity", "quantity must be at least 1")
	}

	return &Item{
		Code:      code,
		Name:      name,
		UnitPrice: price,
		Details:   details,
		CreatedAt: now,
		Quantity:  quantity,
	}, nil
}

// Restock adds quantity to the existing stock
func (i *Item) Restock(quantity int) error {
	if quantity < 1 {
		return NewValidationError("quantity", "quantity must be at least 1")
	}
	i.Quantity += quantity
	return nil
}

// SetQuantity overwrites the stock quantity
func (i *Item) SetQuantity(quantity int) error {
	if quantity < 0 {
		return NewValidationError("quantity", "quantity cannot be negative")
	}
	i.Quantity = quantity
	return nil
}

// Decrement removes sold units from stock
func (i *Item) Decrement(quantity int) error {
	if quantity > i.Quantity {
		return ErrInsufficientStock
	}
	i.Quantity -= quantity
	return nil
}

// StockValue returns price × quantity
func (i Item) StockValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Record encodes the item in ledger column order:
// code, name, price, details, created_at, quantity
func (i Item) Record() []string {
	return []string{
		i.Code,
		i.Name,
		i.UnitPrice.String(),
		i.Details,
		i.CreatedAt.Format(time.RFC3339Nano),
		strconv.Itoa(i.Quantity),
	}
}

// ItemFromRecord decodes a ledger row into an Item
func ItemFromRecord(rec []string) (Item, error) {
	if len(rec) != 6 {
		return Item{}, fmt.Errorf("item record has %d columns, want 6", len(rec))
	}

	price, err := decimal.NewFromString(rec[2])
	if err != nil {
		return Item{}, fmt.Errorf("item %q: invalid price %q: %w", rec[0], rec[2], err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, rec[4])
	if err != nil {
		return Item{}, fmt.Errorf("item %q: invalid created_at %q: %w", rec[0], rec[4], err)
	}

	quantity, err := strconv.Atoi(rec[5])
	if err != nil {
		return Item{}, fmt.Errorf("item %q: invalid quantity %q: %w", rec[0], rec[5], err)
	}

	return Item{
		Code:      rec[0],
		Name:      rec[1],
		UnitPrice: price,
		Details:   rec[3],
		CreatedAt: createdAt,
		Quantity:  quantity,
	}, nil
}
