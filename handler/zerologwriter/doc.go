// Package zerologwriter routes github.com/rs/zerolog events into a uartlog
// facade.
//
//	l := zerolog.New(zerologwriter.New(facade, "APP"))
//	l.Warn().Int("port", 2).Msg("link down")
//
// The level, message and time fields are consumed; the remaining fields
// are rendered as " key=value" pairs sorted by key.
package zerologwriter
