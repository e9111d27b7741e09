package main

import (
	"log"
	"os"
	"path/filepath"

	"attendance-bot/bot"
	"attendance-bot/config"
	"attendance-bot/handlers"
	"attendance-bot/utils/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	store, err := database.Open(filepath.Join(cfg.DataDir, "policy.db"))
	if err != nil {
		log.Fatalf("Error opening policy store: %v", err)
	}
	defer store.Close()

	b, err := bot.New(cfg, store)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	b.Run()

	b.Close()
}
