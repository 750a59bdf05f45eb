package logrushook

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/handler"
	"github.com/philipp01105/uartlog/logger"
)

// Hook is a logrus.Hook that writes every fired entry through a Facade.
type Hook struct {
	facade *logger.Facade
	tag    string
	levels []logrus.Level
}

// New creates a Hook writing to f under tag for the given levels, or for
// logrus.AllLevels when none are given.
func New(f *logger.Facade, tag string, levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{
		facade: f,
		tag:    tag,
		levels: levels,
	}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook.
func (h *Hook) Fire(e *logrus.Entry) error {
	tag, line := handler.Line(h.tag, e.Message, e.Data)
	h.facade.Log(logrusLevelToCore(e.Level), tag, "%s", line)
	return nil
}

// logrusLevelToCore converts a logrus.Level to a core.Level.
func logrusLevelToCore(lvl logrus.Level) core.Level {
	switch lvl {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	default:
		return core.VerboseLevel
	}
}
