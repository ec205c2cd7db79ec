package main

import (
	"Food-Sharing-Platform/cmd/config"
	migration "Food-Sharing-Platform/cmd/database/migrate"
	"Food-Sharing-Platform/cmd/database/seed"
	"Food-Sharing-Platform/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg := utils.LoadConfig(configPath)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("error connecting database: %v", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Errorf("error closing database: %v", err)
		}
	}()

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}
	if err := seed.Seed(db); err != nil {
		log.Errorf("error seeding database: %v", err)
	}

	app, err := config.NewApp(db, cfg)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Errorf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
}
