package main

import (
	"log"

	"github.com/tabdeck/tabdeck/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ tabdeck failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ tabdeck exited with error: %v", err)
	}
}
