// Package zaphandler routes go.uber.org/zap output into a uartlog facade.
//
//	l := zap.New(zaphandler.New(facade, "APP", zapcore.DebugLevel))
//	l.Named("NET").Warn("link down", zap.Int("port", 2))
//
// Fields are rendered as " key=value" pairs sorted by key. The zap logger
// name becomes the tag; a string "tag" field overrides both.
package zaphandler
