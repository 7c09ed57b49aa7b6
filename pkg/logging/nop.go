package logging

// NopLogger игнорирует все сообщения.
// Это логгер клиента по умолчанию.
type NopLogger struct{}

// NewNopLogger создаёт Logger, который ничего не пишет.
func NewNopLogger() Logger {
	return &NopLogger{}
}

// Debug ничего не делает.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info ничего не делает.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn ничего не делает.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error ничего не делает.
func (n *NopLogger) Error(_ string, _ ...any) {}

// With возвращает тот же NopLogger.
func (n *NopLogger) With(_ ...any) Logger {
	return n
}
