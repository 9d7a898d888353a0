package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"pos-service/internal/ledger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExportHandler struct {
	logger *zap.Logger
	store  ledger.Store
	now    func() time.Time
}

func NewExportHandler(store ledger.Store, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// DownloadInventory handles GET /api/download_inventory
// @Summary      Download the inventory ledger
// @Description  Returns the items ledger as a CSV attachment with a header row.
// @Tags         export
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      401  {object}  errors.StandardError
// @Failure      500  {object}  errors.StandardError
// @Router       /api/download_inventory [get]
func (h *ExportHandler) DownloadInventory(c *gin.Context) {
	h.download(c, ledger.Items, "inventory")
}

// DownloadTransactions handles GET /api/download_transactions
// @Summary      Download the transactions ledger
// @Description  Returns the transaction lines ledger as a CSV attachment with a header row.
// @Tags         export
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      401  {object}  errors.StandardError
// @Failure      500  {object}  errors.StandardError
// @Router       /api/download_transactions [get]
func (h *ExportHandler) DownloadTransactions(c *gin.Context) {
	h.download(c, ledger.Transactions, "transactions")
}

func (h *ExportHandler) download(c *gin.Context, kind ledger.Kind, prefix string) {
	// buffered so a failed export can still answer with a JSON error
	var buf bytes.Buffer
	if err := h.store.Export(c.Request.Context(), kind, &buf); err != nil {
		c.Error(toStandardError(err, ""))
		c.Abort()
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", prefix, h.now().Format("20060102_150405"))
	h.logger.Info("Ledger exported",
		zap.String("kind", string(kind)),
		zap.String("filename", filename),
		zap.Int("bytes", buf.Len()),
	)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
