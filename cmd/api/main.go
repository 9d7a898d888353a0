package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos-service/internal/auth"
	"pos-service/internal/billing"
	"pos-service/internal/cache"
	"pos-service/internal/config"
	"pos-service/internal/events"
	"pos-service/internal/handlers"
	"pos-service/internal/inventory"
	"pos-service/internal/ledger"
	"pos-service/internal/scanner"
	"pos-service/pkg/logger"
	"pos-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "pos-service/docs" // Import docs for Swagger
)

// @title           POS Service API
// @version         1.0
// @description     Barcode inventory and point-of-sale API: camera scanning, stock management and sales over a CSV or SQLite ledger.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Browsers use the HttpOnly session cookie set by /login instead.
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting POS Service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	appLogger.Info("🔐 Session Configuration",
		zap.Int("secret_length", len(cfg.JWTSecret)),
		zap.Duration("session_ttl", cfg.SessionTTL),
		zap.String("admin_username", cfg.AdminUsername),
	)

	appLogger.Info("📷 Scanner Configuration",
		zap.Bool("camera_configured", cfg.CameraSnapshotURL != ""),
		zap.Duration("frame_timeout", cfg.CameraFrameTimeout),
		zap.Duration("poll_interval", cfg.ScanPollInterval),
		zap.Duration("max_duration", cfg.ScanMaxDuration),
		zap.Int("max_frame_errors", cfg.ScanMaxFrameErrors),
	)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize ledger store
	appLogger.Info("🔧 Initializing ledger store...",
		zap.String("driver", cfg.StoreDriver),
		zap.String("data_dir", cfg.DataDir),
	)
	store, err := ledger.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize ledger store", zap.Error(err))
	}
	appLogger.Info("✅ Ledger store initialized successfully")

	// Initialize event publisher (Kafka or in-memory fallback)
	appLogger.Info("🔧 Initializing event publisher...", zap.Bool("use_kafka", cfg.UseKafka))
	publisher := events.New(cfg, appLogger)
	appLogger.Info("✅ Event publisher initialized successfully")

	// Initialize cache and request ID store for idempotency
	appLogger.Info("🔧 Initializing request ID store for idempotency...", zap.Bool("use_cache", cfg.UseCache))
	appCache := cache.NewCache(cfg, appLogger)
	requestIDStore := middleware.NewCacheRequestIDStore(appCache)
	appLogger.Info("✅ Request ID store initialized successfully")

	// Initialize JWT manager
	appLogger.Info("🔧 Initializing JWT manager...")
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL, appLogger)
	appLogger.Info("✅ JWT manager initialized successfully")

	// Initialize auth handler
	appLogger.Info("🔧 Initializing auth handler...")
	authHandler, err := auth.NewAuthHandler(jwtManager, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize auth handler", zap.Error(err))
	}
	appLogger.Info("✅ Auth handler initialized successfully")

	// Initialize scanner
	appLogger.Info("🔧 Initializing scanner...")
	var camera scanner.Camera
	if cfg.CameraSnapshotURL != "" {
		camera = scanner.NewSnapshotCamera(cfg.CameraSnapshotURL, cfg.CameraFrameTimeout, appLogger)
	} else {
		appLogger.Warn("No camera configured, continuous scanning is disabled")
	}
	detector := scanner.NewDetector(scanner.NewZXingDecoder(), appLogger)
	scanManager := scanner.NewManager(camera, detector, scanner.Options{
		PollInterval:   cfg.ScanPollInterval,
		MaxDuration:    cfg.ScanMaxDuration,
		MaxFrameErrors: cfg.ScanMaxFrameErrors,
	}, appLogger)
	appLogger.Info("✅ Scanner initialized successfully")

	// Initialize handlers
	appLogger.Info("🔧 Initializing handlers...")
	inventoryHandler := handlers.NewInventoryHandler(inventory.NewService(store, publisher, appLogger), appLogger)
	billingHandler := handlers.NewBillingHandler(billing.NewService(store, publisher, appLogger), appLogger)
	scanHandler := handlers.NewScanHandler(scanManager, detector, appLogger)
	exportHandler := handlers.NewExportHandler(store, appLogger)
	appLogger.Info("✅ Handlers initialized successfully")

	// Initialize router
	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())

	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger, "/api/check_scan_result"))

	// Request ID middleware (must be early in the chain)
	router.Use(middleware.RequestIDMiddleware(appLogger))

	// Error handler middleware
	router.Use(middleware.ErrorHandler(appLogger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint (public)
	router.GET("/health", healthCheck)

	// Auth endpoints (public)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.POST("/logout", authHandler.Logout)

	// Protected endpoints (require session cookie or Bearer token)
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(jwtManager, appLogger))
	api.Use(middleware.IdempotencyMiddleware(requestIDStore, appLogger, cfg.IdempotencyTTL))
	{
		api.POST("/start_continuous_scan", scanHandler.StartScan)
		api.POST("/stop_continuous_scan", scanHandler.StopScan)
		api.POST("/check_scan_result", scanHandler.CheckScanResult)
		api.POST("/scan_barcode", scanHandler.ScanImage)

		api.GET("/books", inventoryHandler.ListBooks)
		api.POST("/books", inventoryHandler.AddBook)
		api.GET("/book/:code", inventoryHandler.GetBook)
		api.POST("/update_book_quantity", inventoryHandler.UpdateQuantity)
		api.POST("/delete_book", inventoryHandler.DeleteBook)
		api.GET("/stats", inventoryHandler.Stats)

		api.POST("/process_bill", billingHandler.ProcessBill)
		api.GET("/transactions", billingHandler.ListTransactions)

		api.GET("/download_inventory", exportHandler.DownloadInventory)
		api.GET("/download_transactions", exportHandler.DownloadTransactions)
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("Starting POS service",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	// scan loops release the camera before the store closes
	scanManager.Shutdown()

	if err := publisher.Close(); err != nil {
		appLogger.Error("Failed to close event publisher", zap.Error(err))
	}
	if err := appCache.Close(); err != nil {
		appLogger.Error("Failed to close cache", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		appLogger.Error("Failed to close ledger store", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

// healthCheck godoc
// @Summary      Health check
// @Description  Returns the service status.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pos-service",
	})
}
