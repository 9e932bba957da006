package main

import (
	"context"
	"log"

	"classrecord-be/internal/bootstrap"
	"classrecord-be/internal/config"
	"classrecord-be/internal/server"
	"classrecord-be/pkg/database"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	// 2. Open the database
	gormDB, err := database.NewGormDB(cfg.Database.Path)
	if err != nil {
		log.Panicf("Unable to open database: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start background consumers
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Printf("Background consumer error: %v", err)
	}

	// 5. Run the server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
