package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	// Debug logs a diagnostic message with slog-style key/value pairs.
	Debug(msg string, args ...any)
	Error(err error)
}
