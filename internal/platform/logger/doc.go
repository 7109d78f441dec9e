// Package logger configures the process-wide slog JSON logger and carries
// request-scoped loggers (trace id, user id) through context.Context.
package logger
