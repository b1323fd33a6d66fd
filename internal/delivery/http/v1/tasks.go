package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/adanyl0v/go-todo-api/internal/models"
	"github.com/adanyl0v/go-todo-api/internal/services"
)

const (
	messageTaskCreated = "Added successfully!"
	messageTaskUpdated = "Updated Successfully!"
	messageTaskDeleted = "Deleted successfully!"
)

type getTaskResponse struct {
	ID          string `json:"id" example:"60abc123def4567890123456"`
	Title       string `json:"title" example:"Buy milk"`
	Description string `json:"description,omitempty" example:"2 liters"`
	Completed   bool   `json:"completed" example:"false"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

type taskMessageResponse struct {
	Message string           `json:"message" example:"Added successfully!"`
	Task    *getTaskResponse `json:"task"`
}

type messageResponse struct {
	Message string `json:"message" example:"Deleted successfully!"`
}

type createTaskRequest struct {
	Title       *string `json:"title,omitempty" example:"Buy milk"`
	Description *string `json:"description,omitempty" example:"2 liters"`
	Completed   *bool   `json:"completed,omitempty" example:"false"`
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty" example:"Buy oat milk"`
	Description *string `json:"description,omitempty" example:"1 liter"`
	Completed   *bool   `json:"completed,omitempty" example:"true"`
}

// bindJSON decodes the request body into obj. An empty body leaves
// obj untouched. Anything after the first JSON value is rejected.
func bindJSON(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var raw json.RawMessage
	err = json.Unmarshal(body, &raw)
	if err != nil {
		return err
	}

	return binding.JSON.BindBody(body, obj)
}

// HandleGetTasks godoc
//
//	@Summary		Get all tasks
//	@Description	Retrieve a list of all tasks
//	@Tags			Tasks
//	@Produce		json
//	@Success		200	{array}		getTaskResponse
//	@Failure		500	{object}	errorResponse
//	@Router			/tasks [get]
func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, err := h.tasks.GetTasks(c.Request.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get tasks")
		abort(c, newInternalServerError(err.Error()))
		return
	}
	h.logger.Debug().
		Int("count", len(tasks)).
		Msg("got tasks")

	response := make([]getTaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newGetTaskResponse(task)
	}

	c.JSON(http.StatusOK, response)
}

// HandleCreateTask godoc
//
//	@Summary		Create a new task
//	@Description	Create a new task with the provided data
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			task	body		createTaskRequest	true	"Task to create"
//	@Success		200		{object}	taskMessageResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/tasks [post]
func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := bindJSON(c, &req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), services.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	response := newGetTaskResponse(task)
	c.JSON(http.StatusOK, taskMessageResponse{
		Message: messageTaskCreated,
		Task:    &response,
	})
}

// HandleUpdateTask godoc
//
//	@Summary		Update a task
//	@Description	Update the supplied fields of a task. Fields left out of
//	@Description	the body keep their values. An unknown id yields a null task.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID of the task to update"
//	@Param			task	body		updateTaskRequest	true	"Fields to update"
//	@Success		200		{object}	taskMessageResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/tasks/{id} [put]
func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	err := bindJSON(c, &req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	taskID := c.Param("id")
	task, err := h.tasks.UpdateTask(c.Request.Context(), services.UpdateTaskParams{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.logger.Warn().
				Str("id", taskID).
				Msg("task not found")
			c.JSON(http.StatusOK, taskMessageResponse{
				Message: messageTaskUpdated,
				Task:    nil,
			})
			return
		}

		h.logger.Error().
			Err(err).
			Str("id", taskID).
			Msg("failed to update task")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	response := newGetTaskResponse(task)
	c.JSON(http.StatusOK, taskMessageResponse{
		Message: messageTaskUpdated,
		Task:    &response,
	})
}

// HandleDeleteTask godoc
//
//	@Summary		Delete a task
//	@Description	Delete a task. Deleting an unknown id succeeds.
//	@Tags			Tasks
//	@Produce		json
//	@Param			id	path		string	true	"ID of the task to delete"
//	@Success		200	{object}	messageResponse
//	@Failure		400	{object}	errorResponse
//	@Router			/tasks/{id} [delete]
func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	err := h.tasks.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("id", taskID).
			Msg("failed to delete task")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: messageTaskDeleted})
}
