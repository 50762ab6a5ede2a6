package main

import (
	"log"

	"github.com/devmatch/devmatch-backend/internal/config"
	"github.com/devmatch/devmatch-backend/internal/db"
)

func main() {
	cfg := config.New()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	if err := db.SeedDemoData(database); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
