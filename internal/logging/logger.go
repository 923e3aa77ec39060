package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	// Key is the field name.
	Key string
	// Value is the field value; any type supported by the backend is allowed.
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates an error field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the unified logging interface used across the application.
// It decouples components from the underlying logging backend.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional structured fields.
	Info(msg string, fields ...Field)
	// Error logs a message at error level with the given error and fields.
	Error(msg string, err error, fields ...Field)
	// Printf logs a formatted message, for compatibility with log.Printf call sites.
	Printf(format string, args ...any)
	// Println logs its arguments, for compatibility with log.Println call sites.
	Println(args ...any)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a zerolog-backed Logger writing to w, tagged with the
// given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	logger := zerolog.New(w).With().
		Timestamp().
		Str("component", component).
		Logger()
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger creates a zerolog-backed Logger writing human-readable
// output to stderr.
func NewDefaultLogger() *ZerologAdapter {
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	return &ZerologAdapter{logger: zerolog.New(console).With().Timestamp().Logger()}
}

// applyFields attaches the structured fields to a zerolog event.
func applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

// Error logs a message at error level together with the causing error.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter adapts a standard library *log.Logger to the Logger
// interface. Levels are rendered as [DEBUG], [INFO], and [ERROR] prefixes.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps an existing standard library logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// formatFields renders structured fields as " key=value" suffixes.
func formatFields(fields []Field) string {
	out := ""
	for _, f := range fields {
		out += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return out
}

// Debug logs a message with a [DEBUG] prefix.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Info logs a message with an [INFO] prefix.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs a message with an [ERROR] prefix and the causing error.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.logger.Printf("[ERROR] %s error=%v%s", msg, err, formatFields(fields))
}

// Printf logs a formatted message.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.logger.Printf(format, args...)
}

// Println logs its arguments.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.logger.Println(args...)
}
