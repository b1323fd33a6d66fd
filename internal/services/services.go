package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-todo-api/internal/models"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidTaskID = errors.New("invalid task id")
)

type TaskService interface {
	// GetTasks returns every stored task in the storage's
	// natural order.
	GetTasks(ctx context.Context) ([]*models.Task, error)

	// CreateTask stores a new task built from the given params
	// and returns it with the identifier assigned by the storage.
	// Completed defaults to false.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// UpdateTask replaces only the non-nil fields of the task with
	// the given ID and returns the updated task.
	//
	// It returns ErrInvalidTaskID if the ID is malformed or
	// ErrTaskNotFound if no task has it. A missing task is
	// never created.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask removes the task with the given ID. Deleting a
	// task that doesn't exist is not an error.
	//
	// It returns ErrInvalidTaskID if the ID is malformed.
	DeleteTask(ctx context.Context, id string) error
}

type CreateTaskParams struct {
	Title       *string
	Description *string
	Completed   *bool
}

type UpdateTaskParams struct {
	ID          string
	Title       *string
	Description *string
	Completed   *bool
}

func (p UpdateTaskParams) empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

func valueOrZero[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
