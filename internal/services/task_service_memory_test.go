package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTaskService(t *testing.T) {
	runTaskServiceSuite(t,
		func(t *testing.T) TaskService {
			return NewMemoryTaskService(zerolog.Nop())
		},
		uuid.NewString,
	)
}

func TestMemoryTaskService_ReturnsCopies(t *testing.T) {
	svc := NewMemoryTaskService(zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("original")})
	require.NoError(t, err)

	created.Title = "mutated by caller"
	tasks, err := svc.GetTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "original", tasks[0].Title)

	tasks[0].Completed = true
	tasks, err = svc.GetTasks(ctx)
	require.NoError(t, err)
	assert.False(t, tasks[0].Completed)
}

func TestMemoryTaskService_AcceptsCanonicalIDForms(t *testing.T) {
	svc := NewMemoryTaskService(zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("case")})
	require.NoError(t, err)

	urn := uuid.MustParse(created.ID).URN()
	updated, err := svc.UpdateTask(ctx, UpdateTaskParams{ID: urn, Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	require.NoError(t, svc.DeleteTask(ctx, urn))
	tasks, err := svc.GetTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestMemoryTaskService_InvalidIDMessage(t *testing.T) {
	svc := NewMemoryTaskService(zerolog.Nop())

	err := svc.DeleteTask(context.Background(), "42")
	require.ErrorIs(t, err, ErrInvalidTaskID)
	assert.Contains(t, err.Error(), `invalid task id "42"`)
}
