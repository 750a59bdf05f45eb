// Package handler adapts other logging APIs so they can use a Facade as
// their output.
//
// Each adapter maps the foreign level onto the facade's levels, renders
// the message followed by " key=value" pairs, and emits it with
// Facade.Log, so the line gets the same color, letter and tag decoration
// as a native call and is subject to the same build threshold.
//
//   - SlogHandler implements log/slog.Handler.
//   - zaphandler.Core implements zapcore.Core.
//   - logrushook.Hook implements logrus.Hook.
//   - zerologwriter.Writer implements zerolog.LevelWriter.
//
// Adapters never buffer. Each record is formatted on the caller's
// goroutine through the facade's active formatter.
package handler
