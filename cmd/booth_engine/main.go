package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/rktclgh/fairplay-booth/internal/app"
	"github.com/rktclgh/fairplay-booth/internal/config"
)

func main() {
	// secrets may come from a local .env during development
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
