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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/quickbite/food-delivery-api/internal/config"
	"github.com/quickbite/food-delivery-api/internal/handlers"
	"github.com/quickbite/food-delivery-api/internal/middleware"
	"github.com/quickbite/food-delivery-api/internal/service"
	"github.com/quickbite/food-delivery-api/internal/store"
	"github.com/quickbite/food-delivery-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting food delivery api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect the document store; one connection for the process lifetime
	ctx := context.Background()
	mongoStore, err := store.NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Error("failed to connect to document store", "error", err)
		os.Exit(1)
	}
	if err := mongoStore.EnsureIndexes(ctx); err != nil {
		log.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}
	log.Info("document store connected", "database", mongoStore.Name())

	// Initialize services
	catalogService := service.NewCatalogService(mongoStore)
	cartService := service.NewCartService(mongoStore)
	orderService := service.NewOrderService(mongoStore, log)
	seeder := service.NewSeeder(catalogService, mongoStore)

	// Initialize handlers
	statusHandler := handlers.NewStatusHandler(mongoStore, log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, seeder, log)
	cartHandler := handlers.NewCartHandler(cartService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Root and diagnostics endpoints
	r.Get("/", statusHandler.Root)
	r.Get("/test", statusHandler.Test)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/seed", catalogHandler.Seed)

		r.Post("/restaurants", catalogHandler.CreateRestaurant)
		r.Get("/restaurants", catalogHandler.ListRestaurants)

		r.Post("/menu", catalogHandler.CreateMenuItem)
		r.Get("/menu/{restaurantID}", catalogHandler.ListMenu)

		r.Get("/cart/{userID}", cartHandler.GetCart)
		r.Post("/cart/{userID}/add", cartHandler.AddItem)
		r.Post("/cart/{userID}/clear", cartHandler.ClearCart)

		r.Post("/orders", orderHandler.PlaceOrder)
		r.Get("/orders/{userID}", orderHandler.ListOrders)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := mongoStore.Close(shutdownCtx); err != nil {
		log.Error("failed to disconnect document store", "error", err)
	}

	log.Info("server stopped gracefully")
}
