// Package logger configures structured logging (log/slog) for the module's
// binaries and tests.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
)

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state
// (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	// Subsystem names the component producing the logs; it is attached to
	// every record as the "subsystem" attribute.
	Subsystem string
	// JSON selects JSON output instead of the default text output.
	JSON bool
	// MinLevel is the minimum level that will be logged.
	MinLevel slog.Level
	// Output is where log records are written. Defaults to os.Stdout.
	Output io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application and
// returns the default logger. This function is thread-safe but modifies
// global state, so concurrent calls will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)

	if opts.Subsystem != "" {
		logger = logger.With("subsystem", opts.Subsystem)
	}

	slog.SetDefault(logger)

	// Redirect the legacy log package into slog (we won't be using it
	// directly, but 3rd party packages might).
	def := log.Default()
	*def = *slog.NewLogLogger(handler, slog.LevelInfo)

	return logger
}

// Fatal logs an error message and exits the application.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
