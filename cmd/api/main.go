package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	paymentUseCase "payment-gateway/internal/domain/usecase/payment"
	"payment-gateway/internal/infrastructure/adapter/api/handler"
	"payment-gateway/internal/infrastructure/adapter/api/routes"
	"payment-gateway/internal/infrastructure/adapter/database"
	"payment-gateway/internal/infrastructure/adapter/logger"
	timeProvider "payment-gateway/internal/infrastructure/adapter/time"
	"payment-gateway/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            parsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work over gorm transactions
	uow := dbManager.CreateUnitOfWork()

	// Initialize the payment use case with the gateway settings
	gatewayConfig := paymentUseCase.GatewayConfig{
		TmnCode:      cfg.VNPay.TmnCode,
		HashSecret:   cfg.VNPay.HashSecret,
		PayURL:       cfg.VNPay.PayURL,
		ReturnURL:    cfg.VNPay.ReturnURL,
		Version:      cfg.VNPay.Version,
		Locale:       cfg.VNPay.Locale,
		CurrencyCode: cfg.VNPay.CurrencyCode,
		OrderType:    cfg.VNPay.OrderType,
	}
	paymentService := paymentUseCase.NewPaymentService(uow, gatewayConfig, tp, appLogger)

	// Initialize API handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, paymentHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// parsePort converts the configured port string to an int
func parsePort(port string) int {
	value, err := strconv.Atoi(port)
	if err != nil {
		return 5432
	}
	return value
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PAY_DB_HOST environment variable)")
	}

	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or PAY_DB_PORT environment variable)")
	}

	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PAY_DB_USERNAME environment variable)")
	}

	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or PAY_DB_PASSWORD environment variable)")
	}

	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PAY_DB_NAME environment variable)")
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate gateway configuration
	if cfg.VNPay.TmnCode == "" {
		missingConfigs = append(missingConfigs, "vnpay.tmnCode (or VNPAY_TMN_CODE environment variable)")
	}

	if cfg.VNPay.HashSecret == "" {
		missingConfigs = append(missingConfigs, "vnpay.hashSecret (or VNPAY_HASH_SECRET environment variable)")
	}

	if cfg.VNPay.PayURL == "" {
		missingConfigs = append(missingConfigs, "vnpay.payUrl (or VNPAY_URL environment variable)")
	}

	if cfg.VNPay.ReturnURL == "" {
		missingConfigs = append(missingConfigs, "vnpay.returnUrl (or VNPAY_RETURN_URL environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
