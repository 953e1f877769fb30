// Package logging defines the Logger interface shared by the server and CLI
// components, with a zerolog backend for structured JSON output and a
// standard-library backend for plain text.
package logging

import (
	"io"
	stdlog "log"

	"github.com/rs/zerolog"
)

// Logger is the logging surface the rest of the application depends on.
// Printf and Println exist so the http.Server and older call sites can log
// without knowing about fields.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// Field is one structured key-value attribute of a log record.
type Field struct {
	Key   string
	Value any
}

// String builds a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Float64 builds a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// ZerologAdapter implements Logger on a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger builds a JSON logger writing to w, tagging every record with the
// given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	)
}

func appendFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.Err(v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	appendFields(z.logger.Info(), fields).Msg(msg)
}

func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	appendFields(z.logger.Error().Err(err), fields).Msg(msg)
}

func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	appendFields(z.logger.Debug(), fields).Msg(msg)
}

// Printf logs at info level through the structured backend.
func (z *ZerologAdapter) Printf(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

// Println logs at info level through the structured backend.
func (z *ZerologAdapter) Println(args ...any) {
	z.logger.Info().Msgf("%v", args)
}

// StdLoggerAdapter implements Logger on a standard log.Logger, prefixing each
// record with its level.
type StdLoggerAdapter struct {
	logger *stdlog.Logger
}

// NewStdLoggerAdapter wraps an existing log.Logger.
func NewStdLoggerAdapter(logger *stdlog.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.print("[INFO]", msg, nil, fields)
}

func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	s.print("[ERROR]", msg, err, fields)
}

func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.print("[DEBUG]", msg, nil, fields)
}

func (s *StdLoggerAdapter) print(level, msg string, err error, fields []Field) {
	switch {
	case err != nil && len(fields) > 0:
		s.logger.Printf("%s %s: %v %v\n", level, msg, err, fields)
	case err != nil:
		s.logger.Printf("%s %s: %v\n", level, msg, err)
	case len(fields) > 0:
		s.logger.Printf("%s %s %v\n", level, msg, fields)
	default:
		s.logger.Println(level, msg)
	}
}

func (s *StdLoggerAdapter) Printf(format string, args ...any) {
	s.logger.Printf(format, args...)
}

func (s *StdLoggerAdapter) Println(args ...any) {
	s.logger.Println(args...)
}
