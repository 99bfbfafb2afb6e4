package ports

// Logger is the diagnostics sink for resolution progress and skipped
// entries. Purely observational; nothing feeds back into the engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
