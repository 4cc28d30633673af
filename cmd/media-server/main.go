package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"chatty/internal/config"
	"chatty/internal/dbmongo"
	"chatty/internal/media"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Close(context.Background())

	storage := dbmongo.NewAttachmentStorage(mongoClient, cfg.Server.MediaBaseURL)
	mediaServer := media.NewHTTPServer(storage)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MediaServicePort),
		Handler:      mediaServer,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	log.Printf("Media server starting on %s", server.Addr)
	log.Printf("Serving attachments at %s/chat-files/{chatID}/{fileName}", cfg.Server.MediaBaseURL)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start media server: %v", err)
	}
}
