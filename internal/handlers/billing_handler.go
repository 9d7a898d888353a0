package handlers

import (
	"fmt"
	"net/http"

	"pos-service/internal/billing"
	"pos-service/pkg/errors"
	"pos-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BillingHandler struct {
	logger  *zap.Logger
	service *billing.Service
}

func NewBillingHandler(service *billing.Service, logger *zap.Logger) *BillingHandler {
	return &BillingHandler{
		logger:  logger,
		service: service,
	}
}

// ProcessBill handles POST /api/process_bill
// @Summary      Process a sale
// @Description  Validates every line against current stock and commits the whole sale or nothing.
// @Description  When any line exceeds stock the response is 400 and details lists every offending line.
// @Description  **Idempotency**: a retry with the same X-Request-ID replays the stored response instead of selling twice.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string              false  "Idempotency key"
// @Param        request       body      ProcessBillRequest  true   "Cart"
// @Success      200           {object}  ProcessBillResponse
// @Failure      400           {object}  errors.StandardError  "Invalid cart or insufficient stock"
// @Failure      401           {object}  errors.StandardError
// @Failure      500           {object}  errors.StandardError
// @Router       /api/process_bill [post]
func (h *BillingHandler) ProcessBill(c *gin.Context) {
	var req ProcessBillRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid process bill request", zap.Error(err))
		c.Error(errors.NewInvalidRequest("invalid request", err.Error()))
		c.Abort()
		return
	}
	if err := req.Validate(); err != nil {
		if err == errNoItems {
			c.Error(errors.NewInvalidRequest(err.Error(), nil))
		} else {
			c.Error(errors.NewValidationError(err))
		}
		c.Abort()
		return
	}

	lines := make([]billing.SaleLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, billing.SaleLine{
			Code:     item.Barcode,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	tx, err := h.service.ProcessSale(c.Request.Context(), billing.SaleCommand{
		CustomerName: req.CustomerName,
		ProcessedBy:  middleware.GetUsername(c),
		Lines:        lines,
		ClientTotal:  req.Total,
	})
	if err != nil {
		c.Error(toStandardError(err, ""))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, ProcessBillResponse{
		Success:       true,
		TransactionID: tx.ID,
		Total:         tx.Total().InexactFloat64(),
		Message:       fmt.Sprintf("Transaction processed successfully. ID: %s", tx.ID),
	})
}

// ListTransactions handles GET /api/transactions
// @Summary      List transactions
// @Description  Returns completed sales grouped by transaction id, newest first.
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  TransactionsResponse
// @Failure      401  {object}  errors.StandardError
// @Failure      500  {object}  errors.StandardError
// @Router       /api/transactions [get]
func (h *BillingHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.service.ListTransactions(c.Request.Context())
	if err != nil {
		c.Error(toStandardError(err, ""))
		c.Abort()
		return
	}

	resp := TransactionsResponse{Transactions: make([]TransactionResponse, 0, len(transactions))}
	for _, tx := range transactions {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(tx))
	}

	c.JSON(http.StatusOK, resp)
}
