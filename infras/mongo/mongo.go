package mongo

import (
	"context"
	"healthtick/config"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func New(config *config.Config) *Connection {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.DB.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		panic(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to ping MongoDB")
		panic(err)
	}

	log.Info().
		Str("database", config.DB.Mongo.Database).
		Msg("Connected to MongoDB")

	return &Connection{
		Client:   client,
		Database: client.Database(config.DB.Mongo.Database),
	}
}

func (c *Connection) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx) //nolint:wrapcheck
}
