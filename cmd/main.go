package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rainaarpit12/Sih-2025/internal/app"
	"github.com/rainaarpit12/Sih-2025/internal/observability"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	theApp, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer theApp.Close()

	ctx := context.Background()
	shutdownOTel := observability.InitOTel(ctx, theApp.Log, observability.OTelConfig{
		ServiceName: "agrichain-backend",
		Environment: os.Getenv("APP_ENV"),
	})
	defer func() {
		if err := shutdownOTel(context.Background()); err != nil {
			theApp.Log.Warn("otel shutdown failed", "error", err)
		}
	}()

	if err := theApp.Run(); err != nil {
		theApp.Log.Error("HTTP server exited", "error", err)
		os.Exit(1)
	}
}
