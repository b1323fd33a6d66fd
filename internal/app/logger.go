package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-api/internal/config"
)

func newDefaultLogger() zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	logger.Info().Msg("initialized default logger")
	return logger
}

func (a *App) MustInitLogger() {
	w, err := loggerOutput(a.cfg.Env, os.Stdout)
	if err != nil {
		a.logger.Error().
			Err(err).
			Str("env", a.cfg.Env).
			Msg("failed to init application logger")
		panic(err)
	}

	a.logger = a.logger.Output(w)
	a.logger.Info().Msg("initialized application logger")
}

// loggerOutput sets the global level for env and returns the writer
// the application logger should use.
func loggerOutput(env string, out io.Writer) (io.Writer, error) {
	switch env {
	case config.EnvDev:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case config.EnvProd:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case config.EnvLocal:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		return consoleWriter, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	return out, nil
}
