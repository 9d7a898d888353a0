package domain

import (
	"fmt"
	"strings"
)

// Domain errors
var (
	ErrItemNotFound      = &DomainError{Message: "item not found"}
	ErrInsufficientStock = &DomainError{Message: "insufficient stock available"}
)

// DomainError represents a domain-level error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// ValidationError reports invalid caller input for a single field
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StockShortage describes one sale line that cannot be served
type StockShortage struct {
	Code      string `json:"barcode"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// InsufficientStockError lists every line of a sale that exceeded stock
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (requested %d, available %d)", s.Code, s.Requested, s.Available))
	}
	return "insufficient stock: " + strings.Join(parts, ", ")
}

// Is lets errors.Is(err, ErrInsufficientStock) match the detailed form
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
