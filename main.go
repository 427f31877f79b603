package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/buildboardhq/buildboard/backend/config"
	"github.com/buildboardhq/buildboard/backend/handler"
	"github.com/buildboardhq/buildboard/backend/middleware"
	"github.com/buildboardhq/buildboard/backend/pkg/logger"
	"github.com/buildboardhq/buildboard/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development secrets; missing .env is fine in deployment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize services
	minioSvc, err := service.NewMinioService(&cfg.Minio)
	if err != nil {
		slog.Error("failed to initialize MINIO service", "error", err)
		os.Exit(1)
	}

	// Ensure bucket exists
	if err := minioSvc.EnsureBucket(context.Background()); err != nil {
		slog.Error("failed to ensure MINIO bucket", "error", err)
		os.Exit(1)
	}

	store := service.NewStore(&cfg.Store)
	extractor := service.NewPDFExtractor()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg, store)
	shopHandler := handler.NewShopHandler(store)
	buildHandler := handler.NewBuildHandler(store)
	partHandler := handler.NewPartHandler(store)
	leadHandler := handler.NewLeadHandler(store)
	invoiceHandler := handler.NewInvoiceHandler(store, minioSvc, extractor)
	marketingHandler := handler.NewMarketingHandler(store)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.GET("/", marketingHandler.Root)
		api.POST("/status", marketingHandler.CreateStatus)
		api.GET("/status", marketingHandler.ListStatus)
		api.POST("/waitlist", marketingHandler.CreateWaitlist)
		api.POST("/referrals", marketingHandler.CreateReferral)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/shops", shopHandler.List)
		api.GET("/shops/:id", shopHandler.Get)
		api.GET("/shops/:id/builds", buildHandler.ListByShop)
		api.GET("/builds", buildHandler.List)
		api.GET("/builds/:id", buildHandler.Get)
		api.GET("/builds/:id/parts", buildHandler.ListParts)
		api.GET("/parts", partHandler.List)
		api.GET("/parts/:id", partHandler.Get)
		api.POST("/leads", leadHandler.Create)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		protected.POST("/shops", shopHandler.Create)
		protected.PUT("/shops/:id", shopHandler.Update)
		protected.GET("/shops/:id/leads", leadHandler.ListByShop)

		protected.POST("/shops/:id/builds", buildHandler.Create)
		protected.PUT("/builds/:id", buildHandler.Update)
		protected.POST("/builds/:id/parts", buildHandler.AttachPart)

		protected.POST("/parts", partHandler.Create)
		protected.POST("/parts/link", partHandler.Link)

		protected.POST("/builds/:id/invoices", invoiceHandler.Upload)
		protected.GET("/invoices/:id", invoiceHandler.Get)
		protected.POST("/invoices/:id/confirm", invoiceHandler.Confirm)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
