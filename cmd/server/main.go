package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/sambawork38-pro/Cambliss/internal/feed"
	"github.com/sambawork38-pro/Cambliss/internal/news"
	"github.com/sambawork38-pro/Cambliss/internal/router"
	"github.com/sambawork38-pro/Cambliss/internal/storage"
	"github.com/sambawork38-pro/Cambliss/pkg/config"
	"github.com/sambawork38-pro/Cambliss/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logrus.New()
	if cfg.Env == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	// Open the durable slot store
	kv, err := storage.OpenSQLite(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to open storage at %s: %v", cfg.StoragePath, err)
	}
	defer kv.Close()

	// News generator and feed engine
	generator := news.NewGenerator(cfg.ArticlesPerCategory, time.Now().UnixNano())
	gateway := storage.NewGateway(kv, log)
	f := feed.New(generator, gateway, log)

	// Periodic "as of" refresh, stopped on shutdown
	stopRefresh := f.StartAutoRefresh(cfg.RefreshInterval)
	defer stopRefresh()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, f, generator, cfg.JWTSecret, log)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
