package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/unnati04102007/ResQNet/internal/app"
	"github.com/unnati04102007/ResQNet/internal/config"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
