package zaphandler

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/handler"
	"github.com/philipp01105/uartlog/logger"
)

// Core is a zapcore.Core that writes entries through a Facade. The zap
// logger name, when set, is used as the tag.
type Core struct {
	zapcore.LevelEnabler
	facade *logger.Facade
	tag    string
	fields []zapcore.Field
}

// New creates a Core writing to f under tag. enab decides which zap levels
// are enabled on top of the build threshold.
func New(f *logger.Facade, tag string, enab zapcore.LevelEnabler) *Core {
	return &Core{
		LevelEnabler: enab,
		facade:       f,
		tag:          tag,
	}
}

// Enabled reports whether lvl passes both enab and the build threshold.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.LevelEnabler.Enabled(lvl) && logger.LocalLevel >= zapLevelToCore(lvl)
}

// With returns a copy of the Core carrying additional fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check adds the Core to ce if the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and its fields and emits it through the facade.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	defaultTag := c.tag
	if ent.LoggerName != "" {
		defaultTag = ent.LoggerName
	}
	tag, line := handler.Line(defaultTag, ent.Message, enc.Fields)
	c.facade.Log(zapLevelToCore(ent.Level), tag, "%s", line)
	return nil
}

// Sync is a no-op; the facade does not buffer.
func (c *Core) Sync() error {
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl == zapcore.WarnLevel:
		return core.WarnLevel
	case lvl == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
