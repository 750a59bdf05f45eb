package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/formatter"
	"github.com/philipp01105/uartlog/handler"
	"github.com/philipp01105/uartlog/handler/logrushook"
	"github.com/philipp01105/uartlog/handler/zaphandler"
	"github.com/philipp01105/uartlog/handler/zerologwriter"
	"github.com/philipp01105/uartlog/logger"
	"github.com/philipp01105/uartlog/sink"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newFacade returns a facade that formats to io.Discard.
func newFacade() *logger.Facade {
	f := logger.New()
	f.SetFormatter(formatter.To(io.Discard))
	f.SetTimestampSource(func() uint32 { return 1000 })
	return f
}

// newBytewiseFacade returns a facade that routes every byte through a sink.
func newBytewiseFacade() *logger.Facade {
	f := logger.New()
	f.SetOutputSink(sink.Discard)
	f.SetFormatter(formatter.To(f.Output()))
	f.SetTimestampSource(func() uint32 { return 1000 })
	return f
}

func newZapLogger() *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(c).Sugar()
}

func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – printf-style info message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Printf(b *testing.B) {
	b.Run("uartlog", func(b *testing.B) {
		f := newFacade()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			f.I("APP", "temp=%d rpm=%d", 21, 3000)
		}
	})

	b.Run("uartlog-bytewise", func(b *testing.B) {
		f := newBytewiseFacade()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			f.I("APP", "temp=%d rpm=%d", 21, 3000)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("temp=%d rpm=%d", 21, 3000)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("reading", "temp", 21, "rpm", 3000)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("temp=%d rpm=%d", 21, 3000)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("temp=%d rpm=%d", 21, 3000)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – foreign API routed through the facade
// ---------------------------------------------------------------------------

func BenchmarkAdapters(b *testing.B) {
	b.Run("slog", func(b *testing.B) {
		l := slog.New(handler.NewSlogHandler(newFacade(), "APP", core.VerboseLevel))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("reading", "temp", 21, "rpm", 3000)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := zap.New(zaphandler.New(newFacade(), "APP", zapcore.DebugLevel))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("reading", zap.Int("temp", 21), zap.Int("rpm", 3000))
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		l.AddHook(logrushook.New(newFacade(), "APP"))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithField("temp", 21).Info("reading")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := zerolog.New(zerologwriter.New(newFacade(), "APP"))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Int("temp", 21).Int("rpm", 3000).Msg("reading")
		}
	})
}
