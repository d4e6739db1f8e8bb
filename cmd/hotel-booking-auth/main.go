package main

import (
	"log"

	"github.com/tienLD2005/hotel-booking-auth/internal/app"
	"github.com/tienLD2005/hotel-booking-auth/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
