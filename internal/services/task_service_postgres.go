package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-api/internal/models"
)

type postgresTaskServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewPostgresTaskService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskService {
	return &postgresTaskServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

// EnsurePostgresTaskTable creates the tasks table if it is missing.
func EnsurePostgresTaskTable(ctx context.Context, pgPool *pgxpool.Pool) error {
	const createTaskTableQuery = `
CREATE TABLE IF NOT EXISTS tasks (
    id          UUID PRIMARY KEY,
    title       TEXT,
    description TEXT,
    completed   BOOLEAN NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)
`
	_, err := pgPool.Exec(ctx, createTaskTableQuery)
	if err != nil {
		// Concurrent CREATE TABLE IF NOT EXISTS may still collide
		// on the catalog entry of the table's row type.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			(pgErr.Code == pgerrcode.UniqueViolation || pgErr.Code == pgerrcode.DuplicateTable) {
			return nil
		}
		return fmt.Errorf("failed to create tasks table: %w", err)
	}
	return nil
}

func (s *postgresTaskServiceImpl) GetTasks(ctx context.Context) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       title,
       description,
       completed
FROM tasks
ORDER BY created_at, id
`
	rows, err := s.pgPool.Query(ctx, selectTasksQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, fmt.Errorf("failed to iterate over tasks: %w", err)
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks, nil
}

func (s *postgresTaskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, fmt.Errorf("failed to generate task id: %w", err)
	}

	const insertTaskQuery = `
INSERT INTO tasks (id,
                   title,
                   description,
                   completed)
VALUES ($1, $2, $3, $4)
RETURNING id, title, description, completed
`
	task, err := scanTask(s.pgPool.QueryRow(
		ctx,
		insertTaskQuery,
		taskUUID,
		params.Title,
		params.Description,
		valueOrZero(params.Completed),
	))
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *postgresTaskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	taskUUID, err := parseUUID(params.ID)
	if err != nil {
		return nil, err
	}

	const updateTaskQuery = `
UPDATE tasks
SET title = COALESCE($1, title),
    description = COALESCE($2, description),
    completed = COALESCE($3, completed)
WHERE id = $4
RETURNING id, title, description, completed
`
	task, err := scanTask(s.pgPool.QueryRow(
		ctx,
		updateTaskQuery,
		params.Title,
		params.Description,
		params.Completed,
		taskUUID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("task_id", params.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to update task")
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("updated task")
	return task, nil
}

func (s *postgresTaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	taskUUID, err := parseUUID(id)
	if err != nil {
		return err
	}

	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		taskUUID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.logger.Debug().
		Str("task_id", id).
		Int64("affected", tag.RowsAffected()).
		Msg("deleted task")

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var (
		id          uuid.UUID
		title       *string
		description *string
		task        models.Task
	)
	err := row.Scan(
		&id,
		&title,
		&description,
		&task.Completed,
	)
	if err != nil {
		return nil, err
	}

	task.ID = id.String()
	task.Title = valueOrZero(title)
	task.Description = valueOrZero(description)
	return &task, nil
}

func parseUUID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %w", ErrInvalidTaskID, id, err)
	}
	return parsed, nil
}
