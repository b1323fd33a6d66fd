package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-api/internal/models"
)

// memoryTaskServiceImpl keeps tasks in process memory. It is meant
// for local runs and tests; nothing survives a restart.
type memoryTaskServiceImpl struct {
	logger zerolog.Logger

	mu    sync.RWMutex
	order []string
	tasks map[string]*models.Task
}

func NewMemoryTaskService(logger zerolog.Logger) TaskService {
	return &memoryTaskServiceImpl{
		logger: logger,
		tasks:  make(map[string]*models.Task),
	}
}

func (s *memoryTaskServiceImpl) GetTasks(_ context.Context) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.tasks[id]
		tasks = append(tasks, &copied)
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("found tasks")
	return tasks, nil
}

func (s *memoryTaskServiceImpl) CreateTask(_ context.Context, params CreateTaskParams) (*models.Task, error) {
	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, fmt.Errorf("failed to generate task id: %w", err)
	}

	task := &models.Task{
		ID:          taskUUID.String(),
		Title:       valueOrZero(params.Title),
		Description: valueOrZero(params.Description),
		Completed:   valueOrZero(params.Completed),
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.mu.Unlock()

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	copied := *task
	return &copied, nil
}

func (s *memoryTaskServiceImpl) UpdateTask(_ context.Context, params UpdateTaskParams) (*models.Task, error) {
	taskUUID, err := parseUUID(params.ID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskUUID.String()]
	if !ok {
		s.logger.Warn().
			Str("task_id", params.ID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Completed != nil {
		task.Completed = *params.Completed
	}

	s.logger.Info().
		Str("task_id", params.ID).
		Msg("updated task")
	copied := *task
	return &copied, nil
}

func (s *memoryTaskServiceImpl) DeleteTask(_ context.Context, id string) error {
	taskUUID, err := parseUUID(id)
	if err != nil {
		return err
	}
	key := taskUUID.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[key]; ok {
		delete(s.tasks, key)
		for i, orderedID := range s.order {
			if orderedID == key {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}
