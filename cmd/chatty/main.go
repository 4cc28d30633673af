package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"chatty/internal/chat"
	"chatty/internal/common"
	"chatty/internal/di"
	"chatty/internal/notif"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	token := os.Getenv("CHATTY_SESSION_TOKEN")
	if token == "" {
		log.Fatal("CHATTY_SESSION_TOKEN is not set; log in first and export the session token")
	}
	identity, err := common.NewTokenIdentity(token)
	if err != nil {
		log.Fatalf("Invalid session token: %v", err)
	}

	log.Println("Initializing application...")
	app, cleanup, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	app.Notifier.Subscribe(notif.NewLogObserver())

	session, err := chat.NewSession(app.Store, app.Feed, app.Blobs, app.Notifier, identity, app.Config)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	ctx := context.Background()
	if err := session.Start(ctx); err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	defer session.Close()

	if err := session.LastError(); err != nil {
		log.Printf("Session started with a degraded conversation list: %v", err)
	}
	log.Printf("Session ready for %s with %d conversations", identity.Username(), len(session.Chats()))

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down session...")
}
