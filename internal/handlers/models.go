package handlers

import (
	stderrors "errors"
	"time"

	"pos-service/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// Request models

// ScanRequest selects the scan session purpose ("add" or "sell"/"bill")
type ScanRequest struct {
	Type string `json:"type" example:"add"`
}

// ScanImageRequest carries one captured frame as a data URL
type ScanImageRequest struct {
	Image string `json:"image" example:"data:image/png;base64,iVBORw0KGgo..."`
}

// AddBookRequest registers a new item or restocks an existing one
type AddBookRequest struct {
	Barcode  string           `json:"barcode" example:"9780131103627"`
	Name     string           `json:"name" example:"The C Programming Language"`
	Price    *decimal.Decimal `json:"price" swaggertype:"number" example:"45.00"`
	Details  string           `json:"details" example:"2nd edition"`
	Quantity *int             `json:"quantity" example:"2"`
}

func (r *AddBookRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Barcode, validation.Required),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, validation.NotNil),
		validation.Field(&r.Quantity, validation.Min(1)),
	)
}

// QuantityOrDefault returns the requested quantity, 1 when omitted
func (r *AddBookRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// UpdateQuantityRequest overwrites the stock of an item
type UpdateQuantityRequest struct {
	Barcode  string `json:"barcode" example:"9780131103627"`
	Quantity *int   `json:"quantity" example:"10"`
}

func (r *UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Barcode, validation.Required),
		validation.Field(&r.Quantity, validation.NotNil),
	)
}

// DeleteBookRequest removes an item
type DeleteBookRequest struct {
	Barcode string `json:"barcode" example:"9780131103627"`
}

func (r *DeleteBookRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Barcode, validation.Required),
	)
}

// BillItemRequest is one cart line
type BillItemRequest struct {
	Barcode  string          `json:"barcode" example:"9780131103627"`
	Name     string          `json:"name" example:"The C Programming Language"`
	Quantity int             `json:"quantity" example:"1"`
	Price    decimal.Decimal `json:"price" swaggertype:"number" example:"45.00"`
}

func (r *BillItemRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Barcode, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}

var errNoItems = stderrors.New("No items in bill")

// ProcessBillRequest is a whole sale
type ProcessBillRequest struct {
	Items        []BillItemRequest `json:"items"`
	Total        *decimal.Decimal  `json:"total" swaggertype:"number" example:"45.00"`
	CustomerName string            `json:"customer_name" example:"Ada Lovelace"`
}

func (r *ProcessBillRequest) Validate() error {
	if len(r.Items) == 0 {
		return errNoItems
	}
	err := validation.ValidateStruct(r,
		validation.Field(&r.CustomerName, validation.Required),
	)
	if err != nil {
		return err
	}
	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Response models

// ItemResponse keeps the field names the browser client expects
type ItemResponse struct {
	Barcode   string  `json:"barcode" example:"9780131103627"`
	Name      string  `json:"name" example:"The C Programming Language"`
	Price     float64 `json:"price" example:"45"`
	Details   string  `json:"details" example:"2nd edition"`
	DateAdded string  `json:"date_added" example:"2024-03-01T10:30:00Z"`
	Quantity  int     `json:"quantity" example:"5"`
}

func toItemResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		Barcode:   item.Code,
		Name:      item.Name,
		Price:     item.UnitPrice.InexactFloat64(),
		Details:   item.Details,
		DateAdded: item.CreatedAt.Format(time.RFC3339),
		Quantity:  item.Quantity,
	}
}

type BooksResponse struct {
	Books []ItemResponse `json:"books"`
}

type BookResponse struct {
	Book ItemResponse `json:"book"`
}

type AddBookResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Book added successfully"`
	Book    ItemResponse `json:"book"`
	Created bool         `json:"created" example:"true"`
}

type UpdateQuantityResponse struct {
	Success bool         `json:"success" example:"true"`
	Book    ItemResponse `json:"book"`
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Book deleted successfully"`
}

type StatsResponse struct {
	TotalBooks    int     `json:"total_books" example:"2"`
	TotalQuantity int     `json:"total_quantity" example:"6"`
	TotalValue    float64 `json:"total_value" example:"132"`
}

type LineItemResponse struct {
	ItemName  string  `json:"item_name" example:"The C Programming Language"`
	Quantity  int     `json:"quantity" example:"1"`
	UnitPrice float64 `json:"unit_price" example:"45"`
}

type TransactionResponse struct {
	TransactionID string             `json:"transaction_id" example:"0b3e5b7e-8c1f-4c39-9d0a-0f2f8e6b1c11"`
	CustomerName  string             `json:"customer_name" example:"Ada Lovelace"`
	Date          string             `json:"date" example:"2024-03-01T10:30:00Z"`
	ProcessedBy   string             `json:"processed_by" example:"admin"`
	Items         []LineItemResponse `json:"items"`
	Total         float64            `json:"total" example:"45"`
}

func toTransactionResponse(tx domain.Transaction) TransactionResponse {
	lines := make([]LineItemResponse, 0, len(tx.Lines))
	for _, l := range tx.Lines {
		lines = append(lines, LineItemResponse{
			ItemName:  l.ItemName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.InexactFloat64(),
		})
	}
	return TransactionResponse{
		TransactionID: tx.ID,
		CustomerName:  tx.CustomerName,
		Date:          tx.Date.Format(time.RFC3339),
		ProcessedBy:   tx.ProcessedBy,
		Items:         lines,
		Total:         tx.Total().InexactFloat64(),
	}
}

type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

type ProcessBillResponse struct {
	Success       bool    `json:"success" example:"true"`
	TransactionID string  `json:"transaction_id" example:"0b3e5b7e-8c1f-4c39-9d0a-0f2f8e6b1c11"`
	Total         float64 `json:"total" example:"45"`
	Message       string  `json:"message" example:"Transaction processed successfully. ID: 0b3e5b7e-8c1f-4c39-9d0a-0f2f8e6b1c11"`
}

type StartScanResponse struct {
	Success   bool   `json:"success" example:"true"`
	SessionID string `json:"session_id" example:"admin_add"`
	Message   string `json:"message" example:"Continuous scanning started"`
}

type CheckScanResponse struct {
	Scanning bool    `json:"scanning" example:"false"`
	Barcode  *string `json:"barcode" example:"9780131103627"`
	Success  bool    `json:"success,omitempty" example:"true"`
}

type ScanImageResponse struct {
	Success   bool    `json:"success" example:"true"`
	Detected  bool    `json:"detected" example:"true"`
	Barcode   *string `json:"barcode" example:"9780131103627"`
	Symbology string  `json:"symbology,omitempty" example:"EAN_13"`
}
