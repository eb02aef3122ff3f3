package primary

// Logger is the logging interface services depend on, keeping zap behind an
// adapter so tests can substitute a silent implementation.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}
