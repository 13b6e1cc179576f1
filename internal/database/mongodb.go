package database

import (
	"context"
	"log"
	"time"

	"livpulse/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// MongodbDB wraps the optional persistent backing. DB is nil when the
// process runs on the default in-memory stores (STORAGE_BACKEND=memory);
// repository constructors check Enabled before choosing a backend.
type MongodbDB struct {
	DB *mongo.Database
}

func (m *MongodbDB) Enabled() bool {
	return m != nil && m.DB != nil
}

// NewDatabase connects to MongoDB when the config asks for the mongo
// backend; otherwise it returns a disabled handle without dialing anything.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*MongodbDB, error) {
	if cfg.StorageBackend != "mongo" {
		return &MongodbDB{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB!")

	db := client.Database(cfg.DBName)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("Disconnecting from MongoDB...")
			return client.Disconnect(ctx)
		},
	})

	return &MongodbDB{DB: db}, nil
}
