// Package app wires configuration, logging and the two run modes (CLI and
// HTTP server) into the numgroup application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/numgroup/internal/cli"
	"github.com/agbru/numgroup/internal/config"
	apperrors "github.com/agbru/numgroup/internal/errors"
	"github.com/agbru/numgroup/internal/logging"
	"github.com/agbru/numgroup/internal/server"
)

// Application represents the numgroup application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the default zerolog logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application by parsing command-line arguments. args
// includes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "numgroup"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		level, _ := logging.ParseLevel(cfg.LogLevel)
		zl := zerolog.New(zerolog.ConsoleWriter{Out: errWriter, NoColor: true}).
			Level(level).With().Timestamp().Logger()
		app.Logger = logging.NewZerologAdapter(zl)
	}
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var err error
	if a.Config.Server {
		err = a.runServer(ctx)
	} else {
		err = a.runFormat(ctx, in, out)
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	}
	return apperrors.ExitCodeFor(err)
}

// runFormat formats the configured inputs within the configured timeout.
func (a *Application) runFormat(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()
	return cli.Run(ctx, a.Config, in, out, a.Logger)
}

// runServer serves the HTTP API until ctx is cancelled.
func (a *Application) runServer(ctx context.Context) error {
	return server.New(a.Config, a.Logger).Start(ctx)
}

// IsHelpError checks if the error is a help flag error (-h was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
