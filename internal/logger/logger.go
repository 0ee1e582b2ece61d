package logger

import (
	"io"
	"os"

	"login-test/internal/errors"

	"github.com/rs/zerolog"
)

// Logger provides structured logging tagged with the emitting component.
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

type Options struct {
	Level string
	JSON  bool

	// Writer defaults to stdout.
	Writer io.Writer
}

// New builds a zerolog-backed logger. JSON output goes straight to the
// writer, otherwise it is wrapped in a console writer.
func New(opts Options) (*ZerologAdapter, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	if !opts.JSON {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: "2006-01-02 15:04:05"}
	}

	return NewZerolog(writer, level), nil
}

func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "parse log level %q", level)
	}
	return parsed, nil
}

// NoOp discards everything.
type NoOp struct{}

func (NoOp) Info(component, message string, fields map[string]interface{})    {}
func (NoOp) Error(component string, err error, fields map[string]interface{})  {}
func (NoOp) Warning(component, message string, fields map[string]interface{}) {}
func (NoOp) Debug(component, message string, fields map[string]interface{})   {}
