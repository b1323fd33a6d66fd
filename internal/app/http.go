package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/adanyl0v/go-todo-api/docs"
	"github.com/adanyl0v/go-todo-api/internal/config"
	"github.com/adanyl0v/go-todo-api/internal/delivery/http/v1"
	"github.com/adanyl0v/go-todo-api/internal/services"
)

const apiDocsPath = "/api-docs"

func (a *App) MustListenAndServeHTTP() {
	if a.cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := a.cfg.HTTP
	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: NewRouter(a.logger, a.tasks),
	}

	go func() {
		a.logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	a.logger.Info().Msg("shut down http server")
}

// NewRouter builds the http handler serving the task api and its
// interactive documentation.
func NewRouter(logger zerolog.Logger, tasks services.TaskService) *gin.Engine {
	v1Handler := v1.New(logger, tasks)

	router := gin.New()
	router.Use(v1Handler.HandleLoggerMiddleware)
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	v1.RegisterRoutes(router, v1Handler)

	router.GET(apiDocsPath, func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, apiDocsPath+"/index.html")
	})
	router.GET(apiDocsPath+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
