package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"meetbooker/internal/config"
)

const (
	usersCollection          = "users"
	eventsCollection         = "events"
	bookingsCollection       = "bookings"
	webinarsCollection       = "webinars"
	schedulesCollection      = "schedules"
	availabilitiesCollection = "availabilities"
)

type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

func InitDB(ctx context.Context, cfg *config.Mongo) (*Storage, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
