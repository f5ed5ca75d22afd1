package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env as early as possible so config env overrides see it.
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
