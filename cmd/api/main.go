package main

// @title Lumina CRM API
// @version 1.0
// @description Lead and pipeline management API for small sales teams.

// @contact.name API Support
// @contact.url https://lumina-crm.io/support
// @contact.email support@lumina-crm.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/GitNimay/lumino-crm-vc/config"
	"github.com/GitNimay/lumino-crm-vc/pkg/api/handlers"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/billing"
	"github.com/GitNimay/lumino-crm-vc/pkg/cache"
	"github.com/GitNimay/lumino-crm-vc/pkg/dashboard"
	"github.com/GitNimay/lumino-crm-vc/pkg/database"
	"github.com/GitNimay/lumino-crm-vc/pkg/email"
	"github.com/GitNimay/lumino-crm-vc/pkg/export"
	importpkg "github.com/GitNimay/lumino-crm-vc/pkg/import"
	"github.com/GitNimay/lumino-crm-vc/pkg/jobs"
	"github.com/GitNimay/lumino-crm-vc/pkg/leads"
	"github.com/GitNimay/lumino-crm-vc/pkg/lists"
	"github.com/GitNimay/lumino-crm-vc/pkg/metrics"
	custommiddleware "github.com/GitNimay/lumino-crm-vc/pkg/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/pipeline"
	"github.com/GitNimay/lumino-crm-vc/pkg/realtime"
	"github.com/GitNimay/lumino-crm-vc/pkg/tasks"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.APIEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.APIEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize the realtime change feed hub
	hub := realtime.NewHub(redisClient)
	defer hub.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize services
	leadService := leads.NewService(db.Ent, redisClient, hub)
	taskService := tasks.NewService(db.Ent, hub)
	listService := lists.NewService(db.Ent, hub)
	pipelineService := pipeline.NewService(db.Ent, leadService)
	dashboardService := dashboard.NewService(db.Ent, redisClient)
	importService := importpkg.NewService(leadService, listService)
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.SendGridAPIKey)
	billingService := billing.NewService(&billing.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		PriceStarter:  cfg.StripePriceStarter,
		PricePro:      cfg.StripePricePro,
		PriceBusiness: cfg.StripePriceBusiness,
		SuccessURL:    cfg.FrontendURL + "/billing/success",
		CancelURL:     cfg.FrontendURL + "/pricing",
	})

	// S3 export upload is optional; without a bucket exports stream
	// straight back to the client.
	var uploader *export.Uploader
	if cfg.S3ExportBucket != "" {
		uploader, err = export.NewUploader(export.UploaderConfig{
			AWSRegion:          cfg.AWSRegion,
			AWSAccessKeyID:     cfg.AWSAccessKeyID,
			AWSSecretAccessKey: cfg.AWSSecretAccessKey,
			Bucket:             cfg.S3ExportBucket,
			KeyPrefix:          "exports/",
		})
		if err != nil {
			log.Fatalf("❌ Failed to initialize S3 uploader: %v", err)
		}
		log.Printf("✅ S3 export uploads enabled (bucket: %s)", cfg.S3ExportBucket)
	}
	exportService := export.NewService(leadService, uploader, emailService)

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(leadService)
	taskHandler := handlers.NewTaskHandler(taskService)
	listHandler := handlers.NewListHandler(listService)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	transferHandler := handlers.NewTransferHandler(importService, exportService)
	billingHandler := handlers.NewBillingHandler(billingService)
	streamHandler := handlers.NewStreamHandler(hub)

	// Initialize cron jobs
	cronManager := jobs.NewCronManager(db.Ent, nil)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiter
	rateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	corsOrigins := []string{cfg.FrontendURL}
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsOrigins = cfg.CORSAllowedOrigins
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Lumina API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		// Check database connection
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		// Check Redis connection
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes group with versioning middleware
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	// Version info endpoint (public)
	v1.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, custommiddleware.VersionInfo(custommiddleware.CurrentAPIVersion))
	})

	// Public pricing
	v1.GET("/pricing", billingHandler.Tiers)

	// Protected routes. The rate limiter runs after JWT so requests
	// are throttled per user rather than per IP.
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddleware(cfg.JWTSecret))
	protected.Use(rateLimiter.RateLimitMiddleware())

	// Lead routes
	leadsGroup := protected.Group("/leads")
	{
		leadsGroup.GET("", leadHandler.List)
		leadsGroup.POST("", leadHandler.Create)
		leadsGroup.GET("/:id", leadHandler.Get)
		leadsGroup.PATCH("/:id", leadHandler.Update)
		leadsGroup.PATCH("/:id/stage", leadHandler.UpdateStage)
		leadsGroup.DELETE("/:id", leadHandler.Delete)
	}

	// Task routes
	tasksGroup := protected.Group("/tasks")
	{
		tasksGroup.GET("", taskHandler.List)
		tasksGroup.POST("", taskHandler.Create)
		tasksGroup.PATCH("/:id", taskHandler.Update)
		tasksGroup.POST("/:id/toggle", taskHandler.ToggleComplete)
		tasksGroup.DELETE("/:id", taskHandler.Delete)
	}

	// List routes
	listsGroup := protected.Group("/lists")
	{
		listsGroup.GET("", listHandler.List)
		listsGroup.POST("", listHandler.Create)
		listsGroup.POST("/:id/leads", listHandler.AddLeads)
		listsGroup.DELETE("/:id/leads/:leadId", listHandler.RemoveLead)
		listsGroup.DELETE("/:id", listHandler.Delete)
	}

	// Pipeline board routes
	pipelineGroup := protected.Group("/pipeline")
	{
		pipelineGroup.GET("", pipelineHandler.Board)
		pipelineGroup.PATCH("/:leadId", pipelineHandler.MoveLead)
	}

	// Dashboard routes
	protected.GET("/dashboard/stats", dashboardHandler.Stats)

	// Import/export routes
	importsGroup := protected.Group("/imports")
	{
		importsGroup.POST("/preview", transferHandler.ImportPreview)
		importsGroup.POST("", transferHandler.Import)
	}
	protected.POST("/exports", transferHandler.Export)

	// Billing checkout
	protected.POST("/billing/checkout", billingHandler.CreateCheckout)

	// Realtime change feed (SSE)
	protected.GET("/stream", streamHandler.Stream)

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Lumina API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: Nightly 3AM (membership sweep), Nightly 4AM (task archive)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
