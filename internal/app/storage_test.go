//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adanyl0v/go-todo-api/internal/config"
	"github.com/adanyl0v/go-todo-api/internal/services"
)

func TestApp_MustConnectStorage_Mongo(t *testing.T) {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Skipf("Failed to start MongoDB testcontainer: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	a := &App{
		logger: zerolog.Nop(),
		cfg: &config.Config{
			HTTP:    config.HTTPConfig{ShutdownTimeout: 5 * time.Second},
			Storage: config.StorageConfig{Driver: config.StorageMongo},
			Mongo: config.MongoConfig{
				URI:            uri,
				Database:       "test",
				Collection:     "tasks",
				ConnectTimeout: 10 * time.Second,
				PingTimeout:    10 * time.Second,
			},
		},
	}

	a.MustConnectStorage()
	require.NotNil(t, a.mongoClient)

	title := "Buy milk"
	task, err := a.tasks.CreateTask(ctx, services.CreateTaskParams{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, task.Title)

	a.DisconnectStorage()
	assert.ErrorIs(t, a.mongoClient.Ping(ctx, nil), mongo.ErrClientDisconnected)
}

func TestApp_MustConnectStorage_Postgres(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("todo"),
		postgres.WithUsername("todo"),
		postgres.WithPassword("todo"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Skipf("Failed to start Postgres testcontainer: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	a := &App{
		logger: zerolog.Nop(),
		cfg: &config.Config{
			HTTP:    config.HTTPConfig{ShutdownTimeout: 5 * time.Second},
			Storage: config.StorageConfig{Driver: config.StoragePostgres},
			Postgres: config.PostgresConfig{
				Host:           host,
				Port:           port.Int(),
				Username:       "todo",
				Password:       "todo",
				Database:       "todo",
				SSLMode:        "disable",
				ConnectTimeout: 10 * time.Second,
				PingTimeout:    10 * time.Second,
			},
		},
	}

	a.MustConnectStorage()
	require.NotNil(t, a.postgresPool)

	tasks, err := a.tasks.GetTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	a.DisconnectStorage()
	assert.Error(t, a.postgresPool.Ping(ctx))
}
