package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpattn/crmql/internal/api"
	"github.com/rpattn/crmql/internal/config"
	"github.com/rpattn/crmql/internal/metadata"
	"github.com/rpattn/crmql/internal/middleware"
	"github.com/rpattn/crmql/internal/search"

	"github.com/rs/cors"
)

func main() {
	// Load configuration
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create CRM metadata client
	client := metadata.NewClient(metadata.ClientConfig{
		BaseURL: cfg.Attio.BaseURL,
		APIKey:  cfg.Attio.APIKey,
	})

	// Wrap with a process-wide LRU for attribute metadata
	resolver, err := metadata.NewCachedResolver(client, cfg.Attio.CacheSize)
	if err != nil {
		log.Fatalf("Failed to create attribute resolver: %v", err)
	}

	// Create the free-text query parser
	parser := search.NewParser(search.Options{LowercaseTokens: cfg.Search.LowercaseTokens})

	// Create the API handler
	handler := api.NewHTTPHandler(resolver, parser)

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	apiHandler := middleware.LoggingMiddleware(
		middleware.AttributeLoaderMiddleware(client)(handler),
	)

	http.Handle("/v1/filters/translate", corsHandler.Handler(apiHandler))
	http.Handle("/v1/query/parse", corsHandler.Handler(apiHandler))

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting filter translation server on %s", cfg.Server.Addr)
		log.Printf("Translate endpoint available at POST /v1/filters/translate")
		log.Printf("Parse endpoint available at POST /v1/query/parse")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
