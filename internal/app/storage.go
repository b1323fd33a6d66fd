package app

import (
	"fmt"

	"github.com/adanyl0v/go-todo-api/internal/config"
	"github.com/adanyl0v/go-todo-api/internal/services"
)

// MustConnectStorage connects the task service selected by the
// configured storage driver.
func (a *App) MustConnectStorage() {
	switch a.cfg.Storage.Driver {
	case config.StorageMongo:
		a.mustConnectMongo()
	case config.StoragePostgres:
		a.mustConnectPostgres()
	case config.StorageMemory:
		a.tasks = services.NewMemoryTaskService(a.logger)
		a.logger.Warn().Msg("using in-memory storage, tasks will not survive a restart")
	default:
		err := fmt.Errorf("unknown storage driver: %s", a.cfg.Storage.Driver)
		a.logger.Error().
			Err(err).
			Msg("failed to connect storage")
		panic(err)
	}
}

func (a *App) DisconnectStorage() {
	switch {
	case a.mongoClient != nil:
		a.disconnectMongo()
	case a.postgresPool != nil:
		a.disconnectPostgres()
	}
}
