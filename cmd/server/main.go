package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pantrylist/backend/config"
	httpDelivery "github.com/pantrylist/backend/internal/delivery/http"
	"github.com/pantrylist/backend/internal/infrastructure/catalogfile"
	"github.com/pantrylist/backend/internal/infrastructure/memstore"
	"github.com/pantrylist/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PantryList Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	productStore := memstore.NewProductStore()
	categoryStore := memstore.NewCategoryStore()

	if cfg.Catalog.SeedFile != "" {
		products, err := catalogfile.Load(cfg.Catalog.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed catalog: %v", err)
		}
		if err := catalogfile.Seed(context.Background(), productStore, products); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		log.Printf("Seeded %d products from %s", productStore.Size(), cfg.Catalog.SeedFile)
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(productStore, usecase.CatalogServiceConfig{
		DefaultCategory:    cfg.Catalog.DefaultCategory,
		SortLocale:         cfg.Catalog.SortTag(),
		EnableDebugLogging: cfg.Voice.DebugLogging,
	})
	categoryService := usecase.NewCategoryService(categoryStore, cfg.Catalog.Categories)
	voiceService := usecase.NewVoiceService(catalogService, usecase.VoiceServiceConfig{
		DefaultLocale:      cfg.Voice.DefaultLocale,
		SupportedLocales:   cfg.Voice.SupportedLocales,
		SuggestionLimit:    cfg.Voice.SuggestionLimit,
		EnableDebugLogging: cfg.Voice.DebugLogging,
	})

	log.Printf("Voice: default=%s, supported=%v, suggestions=%d, debug=%v",
		cfg.Voice.DefaultLocale,
		cfg.Voice.SupportedLocales,
		cfg.Voice.SuggestionLimit,
		cfg.Voice.DebugLogging)

	limiter := httpDelivery.NewIPRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst)
	limiter.StartCleanup(10*time.Minute, make(chan struct{}))
	log.Printf("Rate limit: %d/min per IP, burst %d", cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, categoryService, voiceService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, limiter)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
