package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger zerolog.Logger

// LogLevel represents the log level
type LogLevel string

const (
	// DebugLevel is for debug messages
	DebugLevel LogLevel = "debug"
	// InfoLevel is for informational messages
	InfoLevel LogLevel = "info"
	// WarnLevel is for warning messages
	WarnLevel LogLevel = "warn"
	// ErrorLevel is for error messages
	ErrorLevel LogLevel = "error"
	// FatalLevel is for fatal messages (exits after logging)
	FatalLevel LogLevel = "fatal"
)

// Config represents logger configuration
type Config struct {
	// Level is the log level
	Level LogLevel
	// Pretty enables human-readable console output
	Pretty bool
	// Output is the output writer (defaults to os.Stdout)
	Output io.Writer
}

// ConfigFrom builds a Config from the level and format names used in the
// configuration file. Format "text" selects pretty output.
func ConfigFrom(level, format string, output io.Writer) Config {
	return Config{
		Level:  LogLevel(strings.ToLower(level)),
		Pretty: strings.ToLower(format) == "text",
		Output: output,
	}
}

// Configure configures the global logger and returns it
func Configure(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	switch config.Level {
	case DebugLevel:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case WarnLevel:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case ErrorLevel:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case FatalLevel:
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	writer := config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
	return defaultLogger
}

// Get returns the configured logger
func Get() zerolog.Logger {
	return defaultLogger
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info logs an informational message
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

func init() {
	Configure(Config{
		Level:  InfoLevel,
		Pretty: true,
		Output: os.Stderr,
	})
}
