package main

import (
	"log"

	"gigmarket_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
