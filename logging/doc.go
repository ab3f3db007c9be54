// Package logging builds structured loggers on log/slog.
// Output is JSON by default, or logfmt-style text when LoggerConfig.Format is "text".
// The conf App supplies both the LoggerConfig and the resulting *slog.Logger to Fx.
package logging
