// Package di assembles the application graph with google/wire.
package di

import (
	"context"
	"log"

	"gorm.io/gorm"

	"chatty/internal/backend"
	"chatty/internal/backend/gormstore"
	"chatty/internal/chat"
	"chatty/internal/config"
	"chatty/internal/dbmongo"
	"chatty/internal/dbmysql"
	"chatty/internal/feed"
	"chatty/internal/notif"
)

// Application bundles everything a main needs to run a client session.
type Application struct {
	Config   *config.Config
	DB       *gorm.DB
	Feed     feed.Feed
	Store    backend.Store
	Mongo    *dbmongo.MongoClient
	Blobs    backend.BlobStore
	Notifier *notif.Manager
	Resolver *chat.Resolver
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, err
	}

	if err := dbmysql.Migrate(db); err != nil {
		log.Printf("Migration warning: %v", err)
	}

	return db, nil
}

// ProvideFeed connects to NATS; if the server is unreachable the client
// falls back to an in-process feed, which keeps a single-process setup
// working but sees only its own writes.
func ProvideFeed(cfg *config.Config) (feed.Feed, func()) {
	natsFeed, err := feed.ConnectNATS(cfg)
	if err != nil {
		log.Printf("NATS unavailable (%v), falling back to in-process change feed", err)
		memory := feed.NewMemory()
		return memory, memory.Close
	}
	return natsFeed, natsFeed.Close
}

func ProvideStore(db *gorm.DB, f feed.Feed) backend.Store {
	return gormstore.New(db, f)
}

func ProvideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(context.Background()); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}
	return client, cleanup, nil
}

func ProvideBlobs(client *dbmongo.MongoClient, cfg *config.Config) backend.BlobStore {
	return dbmongo.NewAttachmentStorage(client, cfg.Server.MediaBaseURL)
}

func ProvideNotifier() (*notif.Manager, func()) {
	manager := notif.NewManager(2)
	return manager, manager.Shutdown
}
