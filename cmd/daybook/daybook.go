package main

import (
	"log"

	"github.com/joho/godotenv"

	"tableflip.dev/daybook/pkg/commands"
)

func main() {
	// Optional .env with DAYBOOK_* settings; the OS environment wins.
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
