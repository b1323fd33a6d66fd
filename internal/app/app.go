package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adanyl0v/go-todo-api/internal/config"
	"github.com/adanyl0v/go-todo-api/internal/services"
)

// App owns everything main wires together. The Must* methods are
// expected to be called in order: config, logger, storage, http.
type App struct {
	logger zerolog.Logger
	cfg    *config.Config

	mongoClient  *mongo.Client
	postgresPool *pgxpool.Pool

	tasks services.TaskService
}

func New() *App {
	return &App{logger: newDefaultLogger()}
}
