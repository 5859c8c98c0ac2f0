package main

import (
	"context"
	"log"
	"os"

	"github.com/amassarte/pizzeria-backend/internal/adapters/jsonstore"
	"github.com/amassarte/pizzeria-backend/internal/config"
)

// Writes the default configuration document to DATA_FILE so a fresh
// deployment starts with the full menu, zones and addon catalog. Refuses to
// overwrite an existing document.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if _, err := os.Stat(cfg.DataFile); err == nil {
		log.Fatalf("Refusing to overwrite existing %s", cfg.DataFile)
	}

	store := jsonstore.NewStore(cfg.DataFile)
	if err := store.Update(context.Background(), jsonstore.DefaultConfig()); err != nil {
		log.Fatalf("Failed to seed configuration: %v", err)
	}

	log.Printf("✓ Seeded default configuration at %s", cfg.DataFile)
}
