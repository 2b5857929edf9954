package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"leetcode-sync/internal/di"
)

func main() {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()

	application, cleanup, err := di.InitializeApp()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		cleanup()
		log.Fatalf("sync failed: %v", err)
	}
}
