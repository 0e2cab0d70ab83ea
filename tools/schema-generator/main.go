package main

import (
	"log"
	"os"

	"github.com/grovetools/capsgat/config"
)

func main() {
	r := config.NewReflector()
	if err := r.AddGoComments("github.com/grovetools/capsgat/config", "./"); err != nil {
		log.Printf("Skipping field descriptions: %v", err)
	}

	data, err := config.SchemaJSON(r)
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.WriteFile("capsgat.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated capsgat schema at capsgat.schema.json")
}
