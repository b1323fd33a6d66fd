package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-api/internal/services"
)

type Handler interface {
	HandleLoggerMiddleware(c *gin.Context)

	HandleGetTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
	}
}

// RegisterRoutes binds the task resource to router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/tasks", h.HandleGetTasks)
	router.POST("/tasks", h.HandleCreateTask)
	router.PUT("/tasks/:id", h.HandleUpdateTask)
	router.DELETE("/tasks/:id", h.HandleDeleteTask)
}
