package main

import (
	"log"
	"net/http"
	"sync"
	"time"

	"cricket_server/config"
	"cricket_server/routes"
	"cricket_server/services"
	"cricket_server/storage"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.MustLoad()

	// Select the storage backend
	var store storage.Store
	switch cfg.Storage.Backend {
	case config.BackendDynamoDB:
		log.Println("Initializing DynamoDB client...")
		client := storage.InitializeDynamoDBClient(cfg.Storage.AWSRegion)
		store = storage.NewDynamoStore(client, cfg.Storage.TablePrefix)
		log.Println("DynamoDB client initialized.")
	default:
		log.Printf("Using file storage at %s", cfg.Storage.DataFile)
		fileStore, err := storage.NewFileStore(cfg.Storage.DataFile)
		if err != nil {
			log.Fatalf("Failed to open data file: %v", err)
		}
		store = fileStore
	}

	// One mutex serializes every mutating operation: the engine is a
	// single logical writer.
	var mu sync.Mutex

	// Initialize Services
	teamService := &services.TeamService{Store: store}
	authService := &services.AuthService{
		Store:    store,
		Teams:    teamService,
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
	}
	sweeper := &services.Sweeper{Store: store, Now: time.Now}
	availabilityService := &services.AvailabilityService{
		Store:   store,
		Teams:   teamService,
		Sweeper: sweeper,
		Mu:      &mu,
	}
	matchService := &services.MatchService{Store: store, Mu: &mu}
	chatService := &services.ChatService{Store: store, Mu: &mu}

	// Initialize the router
	r := mux.NewRouter()
	routes.RegisterRoutes(r)
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterTeamRoutes(r, teamService, authService)
	routes.RegisterAvailabilityRoutes(r, availabilityService, authService)
	routes.RegisterMatchRoutes(r, matchService, authService)
	routes.RegisterChatRoutes(r, chatService, authService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
