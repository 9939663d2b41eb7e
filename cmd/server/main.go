package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"quizbank/internal/app"
	"quizbank/internal/config"
	"syscall"
	"time"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	log.Printf("Completion Config:")
	log.Printf("  Base URL:  %s", cfg.AI.BaseURL)
	log.Printf("  Model:     %s", cfg.AI.Model)
	if cfg.AI.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (chat requests will fail)")
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize:", err)
	}
	defer a.Close(context.Background())

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (store: %s)", cfg.HTTPPort, cfg.StoreBackend)
		log.Println("Endpoints:")
		for _, p := range cfg.Endpoints {
			auth := ""
			if p.RequireAPIKey {
				auth = " (api key)"
			}
			log.Printf("  GET/POST /v1/%s%s", p.Name, auth)
		}
		log.Println("  POST /v1/chat (api key)")
		log.Println("  GET  /health")
		log.Println("  GET  /metrics")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
