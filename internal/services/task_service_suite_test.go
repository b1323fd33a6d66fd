package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

// runTaskServiceSuite checks the behavior every TaskService driver
// must share. newService must return an empty service; missingID must
// return a well-formed ID that no task has.
func runTaskServiceSuite(t *testing.T, newService func(t *testing.T) TaskService, missingID func() string) {
	t.Run("create applies defaults", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		task, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("Buy milk")})
		require.NoError(t, err)

		assert.NotEmpty(t, task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Empty(t, task.Description)
		assert.False(t, task.Completed)
	})

	t.Run("create with every field", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		task, err := svc.CreateTask(ctx, CreateTaskParams{
			Title:       ptr("Write report"),
			Description: ptr("quarterly numbers"),
			Completed:   ptr(true),
		})
		require.NoError(t, err)

		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, "quarterly numbers", task.Description)
		assert.True(t, task.Completed)
	})

	t.Run("create assigns unique ids", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		seen := make(map[string]struct{})
		for range 10 {
			task, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("same")})
			require.NoError(t, err)
			require.NotContains(t, seen, task.ID)
			seen[task.ID] = struct{}{}
		}
	})

	t.Run("get returns created tasks", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		tasks, err := svc.GetTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)

		first, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("first")})
		require.NoError(t, err)
		second, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("second")})
		require.NoError(t, err)

		tasks, err = svc.GetTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.ElementsMatch(t,
			[]string{first.ID, second.ID},
			[]string{tasks[0].ID, tasks[1].ID})
	})

	t.Run("update changes only supplied fields", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		created, err := svc.CreateTask(ctx, CreateTaskParams{
			Title:       ptr("Buy milk"),
			Description: ptr("2 liters"),
		})
		require.NoError(t, err)

		updated, err := svc.UpdateTask(ctx, UpdateTaskParams{
			ID:        created.ID,
			Completed: ptr(true),
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Buy milk", updated.Title)
		assert.Equal(t, "2 liters", updated.Description)
		assert.True(t, updated.Completed)

		tasks, err := svc.GetTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, updated, tasks[0])
	})

	t.Run("update without fields returns current task", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		created, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("unchanged")})
		require.NoError(t, err)

		updated, err := svc.UpdateTask(ctx, UpdateTaskParams{ID: created.ID})
		require.NoError(t, err)
		assert.Equal(t, created, updated)
	})

	t.Run("update missing task does not create it", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		_, err := svc.UpdateTask(ctx, UpdateTaskParams{
			ID:    missingID(),
			Title: ptr("ghost"),
		})
		require.ErrorIs(t, err, ErrTaskNotFound)

		tasks, err := svc.GetTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("update malformed id", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.UpdateTask(context.Background(), UpdateTaskParams{
			ID:        "not-an-id",
			Completed: ptr(true),
		})
		require.ErrorIs(t, err, ErrInvalidTaskID)
	})

	t.Run("delete removes task", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		kept, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("kept")})
		require.NoError(t, err)
		removed, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("removed")})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTask(ctx, removed.ID))

		tasks, err := svc.GetTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, kept.ID, tasks[0].ID)
	})

	t.Run("delete missing task succeeds", func(t *testing.T) {
		svc := newService(t)

		err := svc.DeleteTask(context.Background(), missingID())
		require.NoError(t, err)
	})

	t.Run("delete malformed id", func(t *testing.T) {
		svc := newService(t)

		err := svc.DeleteTask(context.Background(), "not-an-id")
		require.ErrorIs(t, err, ErrInvalidTaskID)
	})

	t.Run("concurrent creates", func(t *testing.T) {
		svc := newService(t)
		ctx := context.Background()

		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.CreateTask(ctx, CreateTaskParams{Title: ptr("parallel")})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		tasks, err := svc.GetTasks(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, workers)
	})
}
