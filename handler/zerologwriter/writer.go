package zerologwriter

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/handler"
	"github.com/philipp01105/uartlog/logger"
)

// Writer is a zerolog.LevelWriter that decodes each JSON event and writes
// it through a Facade.
type Writer struct {
	facade *logger.Facade
	tag    string
}

// New creates a Writer emitting to f under tag.
func New(f *logger.Facade, tag string) *Writer {
	return &Writer{facade: f, tag: tag}
}

// Write handles events logged without a level; they are written as info.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter. Events that are not valid
// JSON are emitted verbatim.
func (w *Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level == zerolog.Disabled {
		return len(p), nil
	}

	fields := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		w.facade.Log(zerologLevelToCore(level), w.tag, "%s", bytes.TrimSpace(p))
		return len(p), nil
	}

	msg, _ := fields[zerolog.MessageFieldName].(string)
	delete(fields, zerolog.MessageFieldName)
	delete(fields, zerolog.LevelFieldName)
	delete(fields, zerolog.TimestampFieldName)

	tag, line := handler.Line(w.tag, msg, fields)
	w.facade.Log(zerologLevelToCore(level), tag, "%s", line)
	return len(p), nil
}

// zerologLevelToCore converts a zerolog.Level to a core.Level.
func zerologLevelToCore(level zerolog.Level) core.Level {
	switch level {
	case zerolog.PanicLevel, zerolog.FatalLevel, zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.TraceLevel:
		return core.VerboseLevel
	default:
		return core.InfoLevel
	}
}
