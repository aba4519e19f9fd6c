package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mmgen/minutes-console/internal/bootstrap"
	"github.com/mmgen/minutes-console/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	go app.Session.PollServerStatus(ctx)

	if err := app.Loop.Run(ctx); err != nil {
		log.Fatalf("console error: %v", err)
	}
}
