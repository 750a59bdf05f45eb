package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Facade, so code written against log/slog ends up on the facade's
// formatter like any other leveled call.
type SlogHandler struct {
	facade *logger.Facade
	tag    string
	level  core.Level
	attrs  string // pre-rendered " key=value" pairs
	group  string
}

// NewSlogHandler creates a slog.Handler writing to f under tag. Records
// more verbose than level are dropped.
func NewSlogHandler(f *logger.Facade, tag string, level core.Level) *SlogHandler {
	return &SlogHandler{
		facade: f,
		tag:    tag,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
// Levels the build threshold removes are never enabled.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l := slogLevelToCore(level)
	return l <= s.level && logger.LocalLevel >= l
}

// Handle renders the record message and attributes and emits them through
// the facade. A top-level string attribute named TagKey overrides the tag.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	tag := s.tag

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == TagKey && s.group == "" && a.Value.Kind() == slog.KindString {
			tag = a.Value.String()
			return true
		}
		appendAttr(&b, s.group, a)
		return true
	})

	s.facade.Log(slogLevelToCore(record.Level), tag, "%s", b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	h := *s
	h.attrs = b.String()
	return &h
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	h := *s
	if s.group != "" {
		h.group = s.group + "." + name
	} else {
		h.group = name
	}
	return &h
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.VerboseLevel
	}
}

// appendAttr writes a prefixed with group, flattening nested groups.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	switch {
	case group != "" && key != "":
		key = group + "." + key
	case key == "":
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}
	AppendField(b, key, a.Value.String())
}
