package app

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/adanyl0v/go-todo-api/internal/services"
)

func (a *App) mustConnectMongo() {
	cfg := a.cfg.Mongo

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to connect to mongo")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to ping mongo")
		panic(err)
	}
	a.logger.Info().
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("connected to mongo")

	a.mongoClient = client
	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	a.tasks = services.NewMongoTaskService(a.logger, collection)
}

func (a *App) disconnectMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	err := a.mongoClient.Disconnect(ctx)
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to disconnect from mongo")
		return
	}
	a.logger.Info().Msg("disconnected from mongo")
}
