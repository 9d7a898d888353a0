package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	now := time.Now()
	item, err := NewItem(" 9780131103627 ", "K&R C", decimal.RequireFromString("45.00"), "2nd edition", 2, now)

	require.NoError(t, err)
	assert.Equal(t, "9780131103627", item.Code)
	assert.Equal(t, "K&R C", item.Name)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, "2nd edition", item.Details)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, now, item.CreatedAt)
}

func TestNewItem_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name     string
		code     string
		itemName string
		price    string
		quantity int
		field    string
	}{
		{"empty barcode", "  ", "Book", "1", 1, "barcode"},
		{"empty name", "123", "", "1", 1, "name"},
		{"negative price", "123", "Book", "-0.01", 1, "price"},
		{"zero quantity", "123", "Book", "1", 0, "quantity"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewItem(tc.code, tc.itemName, decimal.RequireFromString(tc.price), "", tc.quantity, time.Now())

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestRestock(t *testing.T) {
	item := &Item{Code: "123", Quantity: 2}

	assert.NoError(t, item.Restock(3))
	assert.Equal(t, 5, item.Quantity)

	assert.Error(t, item.Restock(0))
	assert.Equal(t, 5, item.Quantity)
}

func TestSetQuantity(t *testing.T) {
	item := &Item{Code: "123", Quantity: 2}

	assert.Error(t, item.SetQuantity(-1))
	assert.Equal(t, 2, item.Quantity)

	assert.NoError(t, item.SetQuantity(0))
	assert.Equal(t, 0, item.Quantity)
}

func TestDecrement(t *testing.T) {
	item := &Item{Code: "123", Quantity: 5}

	err := item.Decrement(6)
	assert.Equal(t, ErrInsufficientStock, err)
	assert.Equal(t, 5, item.Quantity)

	assert.NoError(t, item.Decrement(5))
	assert.Equal(t, 0, item.Quantity)
}

func TestStockValue(t *testing.T) {
	item := Item{UnitPrice: decimal.RequireFromString("12.50"), Quantity: 4}
	assert.True(t, item.StockValue().Equal(decimal.NewFromInt(50)))
}

func TestItemRecord_RoundTrip(t *testing.T) {
	original := Item{
		Code:      "9780131103627",
		Name:      "K&R C, \"2nd\"",
		UnitPrice: decimal.RequireFromString("45.10"),
		Details:   "line one\nline two",
		CreatedAt: time.Date(2024, 3, 1, 10, 30, 15, 123456789, time.UTC),
		Quantity:  7,
	}

	decoded, err := ItemFromRecord(original.Record())

	require.NoError(t, err)
	assert.Equal(t, original.Code, decoded.Code)
	assert.Equal(t, original.Name, decoded.Name)
	assert.True(t, original.UnitPrice.Equal(decoded.UnitPrice))
	assert.Equal(t, original.Details, decoded.Details)
	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, original.Quantity, decoded.Quantity)
}

func TestItemFromRecord_Malformed(t *testing.T) {
	_, err := ItemFromRecord([]string{"123", "Book"})
	assert.Error(t, err)

	_, err = ItemFromRecord([]string{"123", "Book", "abc", "", time.Now().Format(time.RFC3339Nano), "1"})
	assert.Error(t, err)

	_, err = ItemFromRecord([]string{"123", "Book", "1.00", "", "yesterday", "1"})
	assert.Error(t, err)

	_, err = ItemFromRecord([]string{"123", "Book", "1.00", "", time.Now().Format(time.RFC3339Nano), "many"})
	assert.Error(t, err)
}
