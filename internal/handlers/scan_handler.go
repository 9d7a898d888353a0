package handlers

import (
	"net/http"

	"pos-service/internal/scanner"
	"pos-service/pkg/errors"
	"pos-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScanHandler struct {
	logger   *zap.Logger
	manager  *scanner.Manager
	detector scanner.FrameDetector
}

func NewScanHandler(manager *scanner.Manager, detector scanner.FrameDetector, logger *zap.Logger) *ScanHandler {
	return &ScanHandler{
		logger:   logger,
		manager:  manager,
		detector: detector,
	}
}

// StartScan handles POST /api/start_continuous_scan
// @Summary      Start a continuous scan session
// @Description  Starts a background capture loop for the current operator and purpose. Starting a session that is already scanning returns the same session id.
// @Tags         scan
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ScanRequest  false  "Purpose (add or sell)"
// @Success      200      {object}  StartScanResponse
// @Failure      400      {object}  errors.StandardError
// @Failure      401      {object}  errors.StandardError
// @Failure      409      {object}  errors.StandardError  "Camera in use by another session"
// @Failure      503      {object}  errors.StandardError  "No camera configured"
// @Router       /api/start_continuous_scan [post]
func (h *ScanHandler) StartScan(c *gin.Context) {
	key, ok := h.sessionKey(c)
	if !ok {
		return
	}

	sessionID, err := h.manager.Start(c.Request.Context(), key)
	if err != nil {
		h.logger.Warn("Failed to start scan session",
			zap.String("session_id", key.SessionID()),
			zap.Error(err),
		)
		c.Error(toStandardError(err, ""))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, StartScanResponse{
		Success:   true,
		SessionID: sessionID,
		Message:   "Continuous scanning started",
	})
}

// StopScan handles POST /api/stop_continuous_scan
// @Summary      Stop a continuous scan session
// @Description  Cancels the capture loop. A code found before the stop stays available to the next poll.
// @Tags         scan
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ScanRequest  false  "Purpose (add or sell)"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  errors.StandardError
// @Failure      401      {object}  errors.StandardError
// @Router       /api/stop_continuous_scan [post]
func (h *ScanHandler) StopScan(c *gin.Context) {
	key, ok := h.sessionKey(c)
	if !ok {
		return
	}

	h.manager.Stop(key)

	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Scanning stopped",
	})
}

// CheckScanResult handles POST /api/check_scan_result
// @Summary      Poll a scan session
// @Description  Returns the detected barcode exactly once. Afterwards, or when no session exists, the response is {"scanning": false, "barcode": null}.
// @Tags         scan
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ScanRequest  false  "Purpose (add or sell)"
// @Success      200      {object}  CheckScanResponse
// @Failure      400      {object}  errors.StandardError
// @Failure      401      {object}  errors.StandardError
// @Router       /api/check_scan_result [post]
func (h *ScanHandler) CheckScanResult(c *gin.Context) {
	key, ok := h.sessionKey(c)
	if !ok {
		return
	}

	status := h.manager.Poll(key)

	c.JSON(http.StatusOK, CheckScanResponse{
		Scanning: status.Scanning,
		Barcode:  status.Code,
		Success:  status.Code != nil,
	})
}

// ScanImage handles POST /api/scan_barcode
// @Summary      Decode a single captured image
// @Description  Decodes one image sent as a data URL (or bare base64) and returns the first non-QR barcode found.
// @Tags         scan
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ScanImageRequest  true  "Captured frame"
// @Success      200      {object}  ScanImageResponse
// @Failure      400      {object}  errors.StandardError  "No image data provided or not an image"
// @Failure      401      {object}  errors.StandardError
// @Router       /api/scan_barcode [post]
func (h *ScanHandler) ScanImage(c *gin.Context) {
	var req ScanImageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid scan request", zap.Error(err))
		c.Error(errors.NewInvalidRequest("invalid request", err.Error()))
		c.Abort()
		return
	}
	if req.Image == "" {
		c.Error(errors.NewInvalidRequest("No image data provided", nil))
		c.Abort()
		return
	}

	img, err := scanner.DecodeDataURL(req.Image)
	if err != nil {
		c.Error(toStandardError(err, ""))
		c.Abort()
		return
	}

	detection, found := h.detector.DetectOnce(img)
	if !found {
		c.JSON(http.StatusOK, ScanImageResponse{})
		return
	}

	h.logger.Info("Barcode detected from image",
		zap.String("barcode", detection.Text),
		zap.String("symbology", detection.Symbology),
		zap.String("user", middleware.GetUsername(c)),
	)

	code := detection.Text
	c.JSON(http.StatusOK, ScanImageResponse{
		Success:   true,
		Detected:  true,
		Barcode:   &code,
		Symbology: detection.Symbology,
	})
}

// sessionKey reads the optional {"type"} body and builds the session key
// for the current operator. It aborts the request on failure.
func (h *ScanHandler) sessionKey(c *gin.Context) (scanner.Key, bool) {
	var req ScanRequest

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("Invalid scan request", zap.Error(err))
			c.Error(errors.NewInvalidRequest("invalid request", err.Error()))
			c.Abort()
			return scanner.Key{}, false
		}
	}

	purpose, err := scanner.ParsePurpose(req.Type)
	if err != nil {
		c.Error(toStandardError(err, ""))
		c.Abort()
		return scanner.Key{}, false
	}

	return scanner.Key{Operator: middleware.GetUsername(c), Purpose: purpose}, true
}
