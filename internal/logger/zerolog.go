package logger

import (
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// sensitiveKeys never reach the output with their value, whatever the
// caller passes.
var sensitiveKeys = map[string]struct{}{
	"password":       {},
	"password_input": {},
	"secret":         {},
}

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.emit(z.logger.Error(), component, fields).Err(err).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Debug(), component, fields).Msg(message)
}

// emit writes the component, then the fields in key order so lines for the
// same event always read the same.
func (z *ZerologAdapter) emit(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	event = event.Str("component", component)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, ok := sensitiveKeys[strings.ToLower(k)]; ok {
			event = event.Str(k, redacted)
			continue
		}
		event = event.Interface(k, fields[k])
	}
	return event
}
