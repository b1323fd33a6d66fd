package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-todo-api/internal/services"
)

func (a *App) mustConnectPostgres() {
	cfg := a.cfg.Postgres
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = pool.Ping(ctx)
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}
	a.logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("connected to postgres")

	err = services.EnsurePostgresTaskTable(ctx, pool)
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to create tasks table")
		panic(err)
	}

	a.postgresPool = pool
	a.tasks = services.NewPostgresTaskService(a.logger, pool)
}

func (a *App) disconnectPostgres() {
	a.postgresPool.Close()
	a.logger.Info().Msg("disconnected from postgres")
}
