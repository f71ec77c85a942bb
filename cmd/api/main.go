package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/velamar/pesca-api/docs" // Swagger docs
	"github.com/velamar/pesca-api/internal/config"
	"github.com/velamar/pesca-api/internal/database"
	"github.com/velamar/pesca-api/internal/handlers"
	"github.com/velamar/pesca-api/internal/jobs"
	"github.com/velamar/pesca-api/internal/middleware"
	"github.com/velamar/pesca-api/internal/repository"
	"github.com/velamar/pesca-api/internal/services"
	"github.com/velamar/pesca-api/internal/storage"
	"github.com/velamar/pesca-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Velamar Pesca API
// @version 1.0
// @description REST API for the Velamar fishing-industry ERP: settlements ("entregas a rendir"), movements and liquidation reports

// @contact.name API Support
// @contact.email soporte@velamar.app

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.ResendAPIKey == "" {
		logger.Warn("Resend email disabled: RESEND_API_KEY not set. Liquidation notifications will be skipped.")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Pick where liquidation PDFs go: the external document service when
	// configured, local disk otherwise
	var uploader services.DocumentUploader
	if cfg.DocumentServiceURL != "" {
		uploader = storage.NewRemoteStorage(cfg.DocumentServiceURL, func() string {
			return cfg.DocumentServiceToken
		})
		logger.Info("Using remote document service", "url", cfg.DocumentServiceURL)
	} else {
		uploader = services.NewLocalUploader(store)
		logger.Info("Using local document storage")
	}

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, uploader, worker, cfg)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs)

	// Initialize handlers
	h := handlers.NewHandlers(svcs, store)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Stored liquidation PDFs (local storage deployments)
	router.Static("/documentos", cfg.StoragePath)

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			// Settlements
			entregas := protected.Group("/entregas-rendir")
			{
				entregas.GET("", h.Entrega.Index)
				entregas.POST("", h.Entrega.Create)

				// Static route first so "upload-pdf" is not matched as :id
				entregas.POST("/upload-pdf", h.Entrega.UploadPDF)

				entregas.GET("/:id", h.Entrega.Show)
				entregas.PUT("/:id", h.Entrega.Update)
				entregas.DELETE("/:id", middleware.RequireAdmin(), h.Entrega.Delete)

				// Lifecycle
				entregas.POST("/:id/liquidar", middleware.RequireRole("admin", "liquidador"), h.Entrega.Liquidar)
				entregas.POST("/:id/reabrir", middleware.RequireRole("admin", "liquidador"), h.Entrega.Reabrir)
				entregas.POST("/:id/anular", middleware.RequireAdmin(), h.Entrega.Anular)

				// Movements of a settlement
				entregas.GET("/:id/movimientos", h.Movimiento.Index)

				// Reports and exports
				entregas.GET("/:id/liquidacion.pdf", h.Report.LiquidacionPDF)
				entregas.GET("/:id/constancia.pdf", h.Report.ConstanciaPDF)
				entregas.GET("/:id/export.csv", h.Report.ExportCSV)
				entregas.GET("/:id/export.xlsx", h.Report.ExportXLSX)
			}

			// Movements
			movimientos := protected.Group("/movimientos")
			{
				movimientos.POST("", h.Movimiento.Create)
				movimientos.GET("/:id", h.Movimiento.Show)
				movimientos.PUT("/:id", h.Movimiento.Update)
				movimientos.DELETE("/:id", h.Movimiento.Delete)
			}

			// Users (admin only)
			protected.POST("/users", middleware.RequireAdmin(), h.User.Create)

			// Catalogs
			protected.GET("/tipos-movimiento", h.Movimiento.TiposMovimiento)
			protected.GET("/movimientos-caja/:id", h.Movimiento.ShowMovimientoCaja)
			protected.GET("/empresas/:id", h.Movimiento.ShowEmpresa)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Regenerate missing liquidation reports every hour
	worker.ScheduleEvery(1*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Regenerating missing liquidation reports...")
		return svcs.Liquidacion.RegenerarPendientes(ctx)
	})

	logger.Info("Scheduled recurring jobs")
}
