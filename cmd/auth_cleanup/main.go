package main

import (
	"context"
	"log"
	"os"

	"sportshots/internal/database"
	"sportshots/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	tokens := repository.NewLoginTokenRepository(db)
	removed, err := tokens.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup login_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: login_tokens=%d", removed)
}
