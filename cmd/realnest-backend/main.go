package main

import (
	"log"

	"realnest-backend/internal"
)

func main() {
	application, err := internal.NewApp()
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("FATAL: Application run failed: %v", err)
	}
}
