package domain

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one sold item within a transaction
type LineItem struct {
	ItemName  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns quantity × unit price
func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Transaction is an immutable completed sale
type Transaction struct {
	ID           string
	CustomerName string
	Date         time.Time
	ProcessedBy  string
	Lines        []LineItem
}

// Total is derived from the lines and never stored
func (t Transaction) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Records encodes one ledger row per line:
// transaction_id, item_name, item_quantity, item_price, customer_name, date, processed_by
func (t Transaction) Records() [][]string {
	date := t.Date.Format(time.RFC3339Nano)
	rows := make([][]string, 0, len(t.Lines))
	for _, l := range t.Lines {
		rows = append(rows, []string{
			t.ID,
			l.ItemName,
			strconv.Itoa(l.Quantity),
			l.UnitPrice.String(),
			t.CustomerName,
			date,
			t.ProcessedBy,
		})
	}
	return rows
}

// TransactionsFromRecords groups physical rows by transaction id, keeping
// line order, and returns transactions sorted by date descending.
func TransactionsFromRecords(records [][]string) ([]Transaction, error) {
	byID := make(map[string]*Transaction)
	order := make([]string, 0)

	for _, rec := range records {
		if len(rec) != 7 {
			return nil, fmt.Errorf("transaction record has %d columns, want 7", len(rec))
		}

		quantity, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("transaction %q: invalid quantity %q: %w", rec[0], rec[2], err)
		}
		price, err := decimal.NewFromString(rec[3])
		if err != nil {
			return nil, fmt.Errorf("transaction %q: invalid price %q: %w", rec[0], rec[3], err)
		}

		tx, ok := byID[rec[0]]
		if !ok {
			date, err := time.Parse(time.RFC3339Nano, rec[5])
			if err != nil {
				return nil, fmt.Errorf("transaction %q: invalid date %q: %w", rec[0], rec[5], err)
			}
			tx = &Transaction{
				ID:           rec[0],
				CustomerName: rec[4],
				Date:         date,
				ProcessedBy:  rec[6],
			}
			byID[rec[0]] = tx
			order = append(order, rec[0])
		}

		tx.Lines = append(tx.Lines, LineItem{
			ItemName:  rec[1],
			Quantity:  quantity,
			UnitPrice: price,
		})
	}

	transactions := make([]Transaction, 0, len(order))
	for _, id := range order {
		transactions = append(transactions, *byID[id])
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].ID > transactions[j].ID
		}
		return transactions[i].Date.After(transactions[j].Date)
	})

	return transactions, nil
}
