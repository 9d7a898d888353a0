package handlers

import (
	"net/http"
	"strings"

	"pos-service/internal/inventory"
	"pos-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	logger  *zap.Logger
	service *inventory.Service
}

func NewInventoryHandler(service *inventory.Service, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		logger:  logger,
		service: service,
	}
}

// ListBooks handles GET /api/books
// @Summary      List inventory items
// @Description  Returns every item in the inventory ledger in stored order.
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  BooksResponse
// @Failure      401  {object}  errors.StandardError
// @Failure      500  {object}  errors.StandardError  "Ledger read failure"
// @Router       /api/books [get]
func (h *InventoryHandler) ListBooks(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(toStandardError(err, ""))
		c.Abort()
		return
	}

	books := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		books = append(books, toItemResponse(item))
	}

	c.JSON(http.StatusOK, BooksResponse{Books: books})
}

// AddBook handles POST /api/books
// @Summary      Add or restock an item
// @Description  Creates the item when the barcode is new. When it already exists the quantity is added to the stored stock and the other fields are kept.
// @Description  **Idempotency**: send X-Request-ID to have a retried request replay the stored response.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string          false  "Idempotency key"
// @Param        request       body      AddBookRequest  true   "Item"
// @Success      201           {object}  AddBookResponse  "Item created"
// @Success      200           {object}  AddBookResponse  "Existing item restocked"
// @Failure      400           {object}  errors.StandardError
// @Failure      401           {object}  errors.StandardError
// @Failure      500           {object}  errors.StandardError
// @Router       /api/books [post]
func (h *InventoryHandler) AddBook(c *gin.Context) {
	var req AddBookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid add book request", zap.Error(err))
		c.Error(errors.NewInvalidRequest("invalid request", err.Error()))
		c.Abort()
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(errors.NewValidationError(err))
		c.Abort()
		return
	}

	item, created, err := h.service.AddOrRestock(c.Request.Context(), inventory.AddItemCommand{
		Code:     req.Barcode,
		Name:     req.Name,
		Price:    *req.Price,
		Details:  req.Details,
		Quantity: req.QuantityOrDefault(),
	})
	if err != nil {
		c.Error(toStandardError(err, req.Barcode))
		c.Abort()
		return
	}

	status := http.StatusOK
	message := "Book quantity updated successfully"
	if created {
		status = http.StatusCreated
		message = "Book added successfully"
	}

	c.JSON(status, AddBookResponse{
		Success: true,
		Message: message,
		Book:    toItemResponse(item),
		Created: created,
	})
}

// GetBook handles GET /api/book/:code
// @Summary      Get an item by barcode
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Barcode"
// @Success      200   {object}  BookResponse
// @Failure      401   {object}  errors.StandardError
// @Failure      404   {object}  errors.StandardError  "Book not found"
// @Failure      500   {object}  errors.StandardError
// @Router       /api/book/{code} [get]
func (h *InventoryHandler) GetBook(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	item, err := h.service.Get(c.Request.Context(), code)
	if err != nil {
		c.Error(toStandardError(err, code))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, BookResponse{Book: toItemResponse(item)})
}

// UpdateQuantity handles POST /api/update_book_quantity
// @Summary      Set an item's stock quantity
// @Description  Overwrites the stock quantity. Negative quantities are rejected and leave the item unchanged.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      UpdateQuantityRequest  true  "New quantity"
// @Success      200      {object}  UpdateQuantityResponse
// @Failure      400      {object}  errors.StandardError
// @Failure      401      {object}  errors.StandardError
// @Failure      404      {object}  errors.StandardError
// @Failure      500      {object}  errors.StandardError
// @Router       /api/update_book_quantity [post]
func (h *InventoryHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid update quantity request", zap.Error(err))
		c.Error(errors.NewInvalidRequest("invalid request", err.Error()))
		c.Abort()
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(errors.NewValidationError(err))
		c.Abort()
		return
	}

	item, err := h.service.SetQuantity(c.Request.Context(), req.Barcode, *req.Quantity)
	if err != nil {
		c.Error(toStandardError(err, req.Barcode))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, UpdateQuantityResponse{
		Success: true,
		Book:    toItemResponse(item),
	})
}

// DeleteBook handles POST /api/delete_book
// @Summary      Delete an item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      DeleteBookRequest  true  "Barcode to delete"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  errors.StandardError
// @Failure      401      {object}  errors.StandardError
// @Failure      404      {object}  errors.StandardError
// @Failure      500      {object}  errors.StandardError
// @Router       /api/delete_book [post]
func (h *InventoryHandler) DeleteBook(c *gin.Context) {
	var req DeleteBookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid delete book request", zap.Error(err))
		c.Error(errors.NewInvalidRequest("invalid request", err.Error()))
		c.Abort()
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(errors.NewValidationError(err))
		c.Abort()
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.Barcode); err != nil {
		c.Error(toStandardError(err, req.Barcode))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Book deleted successfully",
	})
}

// Stats handles GET /api/stats
// @Summary      Inventory statistics
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatsResponse
// @Failure      401  {object}  errors.StandardError
// @Failure      500  {object}  errors.StandardError
// @Router       /api/stats [get]
func (h *InventoryHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		c.Error(toStandardError(err, ""))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalBooks:    stats.Count,
		TotalQuantity: stats.TotalQuantity,
		TotalValue:    stats.TotalValue.InexactFloat64(),
	})
}
