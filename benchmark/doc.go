// Package benchmark compares uartlog against zap, slog, logrus and
// zerolog for printf-style messages written to io.Discard, and measures
// the cost of routing each of those libraries through a facade with the
// handler adapters.
//
// It is a separate module so the comparison libraries stay out of the
// main module's dependency graph for users who never import them.
package benchmark
