package main

import (
	"log"

	"github.com/Anal-Rauth/Task-Manager/database"
	"github.com/Anal-Rauth/Task-Manager/firebase"
	"github.com/Anal-Rauth/Task-Manager/handlers"
	"github.com/Anal-Rauth/Task-Manager/observability"
	"github.com/Anal-Rauth/Task-Manager/web"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using the process environment")
	}

	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer db.Close()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Error loading templates: %v", err)
	}

	store := database.NewPostgresTaskStore(db)
	authService := firebase.NewService()
	metrics := observability.NewMetrics("taskmanager")

	h := handlers.New(store, authService, renderer, metrics)

	LoadRoutes(h)
}
