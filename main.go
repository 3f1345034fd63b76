package main

import (
	"os"
	"os/signal"
	"syscall"

	"quickreel/backend/config"
	_ "quickreel/backend/docs"
	"quickreel/backend/handlers"
	"quickreel/backend/internal/catalog"
	"quickreel/backend/internal/db"
	"quickreel/backend/internal/preview"
	"quickreel/backend/internal/storage"
)

// @title QuickReel Backend API
// @version 1.0
// @description Template catalog, asset uploads and mock instant-edit previews for the QuickReel editor.
// @BasePath /
func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)
	log := config.Log

	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory %s: %v", cfg.UploadDir, err)
	}

	cat := catalog.Default()
	selector := preview.NewSelector(cat)

	// The database is optional. Without it the diagnostics endpoint reports
	// "Not Configured" and everything else works normally.
	var dbClient *db.Client
	if cfg.SupabaseConfigured() {
		dbClient, err = db.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.ProbeTable)
		if err != nil {
			log.Warnf("Supabase client unavailable: %v", err)
			dbClient = nil
		}
	}

	h := handlers.NewApplicationHandler(log, cat, store, selector, dbClient)
	app := handlers.NewApp(cfg, h)

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Shutting down QuickReel backend...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("Error during shutdown: %v", err)
		}
	}()

	log.Infof("Starting QuickReel backend on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
	log.Info("QuickReel backend shut down gracefully.")
}
