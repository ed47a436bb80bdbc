package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/heara/heara-api/internal/config"
	"github.com/heara/heara-api/internal/database"
	"github.com/heara/heara-api/internal/handler"
	"github.com/heara/heara-api/internal/middleware"
	"github.com/heara/heara-api/internal/repository"
	"github.com/heara/heara-api/internal/service"
)

// main is the application entrypoint for the He-Ara API server.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting heara api")

	// 3. Connect database
	db, err := database.Connect(&cfg.Mongo)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	// 4. Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	productRepo := repository.NewProductRepository(db)

	// 5. Initialize services
	leadSvc := service.NewLeadService(leadRepo)
	productSvc := service.NewProductService(productRepo)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:  handler.NewHealthHandler(),
		Lead:    handler.NewLeadHandler(leadSvc),
		Product: handler.NewProductHandler(productSvc),
	}

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 8. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 9. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 10. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health  *handler.HealthHandler
	Lead    *handler.LeadHandler
	Product *handler.ProductHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/", handlers.Health.GetRoot)

	api := router.Group("/api")
	{
		api.POST("/leads", handlers.Lead.CreateLead)
		api.GET("/leads", handlers.Lead.ListLeads)
		api.GET("/leads/:id", handlers.Lead.GetLead)
		api.PATCH("/leads/:id", handlers.Lead.UpdateLead)

		api.GET("/products", handlers.Product.ListProducts)
		api.GET("/products/:id", handlers.Product.GetProduct)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
