package conf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-conf/logging"
	"github.com/0xalexb/hjarta-conf/pathspec"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// AppOptions holds configuration settings for an App.
type AppOptions struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	Paths     []string
}

// AppOption defines a function type for applying App options.
type AppOption func(*AppOptions)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) AppOption {
	return func(opts *AppOptions) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) AppOption {
	return func(opts *AppOptions) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) AppOption {
	return func(opts *AppOptions) {
		opts.LogFormat = format
	}
}

// WithPaths makes the application load configuration from raw path strings and
// provide the merged *Config. A leading "?" marks an optional path.
func WithPaths(paths ...string) AppOption {
	return func(opts *AppOptions) {
		opts.Paths = append(opts.Paths, paths...)
	}
}

// App is a configured starting point for an application using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...AppOption) *App {
	var options AppOptions

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *AppOptions) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := createLogger(loggerConfig, os.Stderr)
	slog.SetDefault(logger)

	modules := options.Modules
	if len(options.Paths) > 0 {
		modules = append([]fx.Option{Module(pathspec.Parse(options.Paths...))}, modules...)
	}

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Options(modules...),
	)
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

// Err returns the error recorded while constructing the application, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
