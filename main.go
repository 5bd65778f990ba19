package main

import (
	"flag"
	"log"

	"lingua_edu_backend/internal/app"
	"lingua_edu_backend/internal/config"
)

// @title Lingua Edu API
// @version 1.0
// @description Language course catalog with enrollment and quiz scoring
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if cfg.MigrateOnly {
		log.Println("Migration finished, exiting")
		return
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
