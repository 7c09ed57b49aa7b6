// Package logging предоставляет интерфейс структурированного логирования,
// которым пользуется клиент GitLab, и его реализации поверх log/slog.
//
// По умолчанию клиент использует NopLogger: библиотека не пишет в вывод
// вызывающей программы, пока ей явно не передали логгер.
package logging

// Logger определяет интерфейс для структурированного логирования.
//
// Все методы принимают сообщение и опциональные key-value пары:
//
//	logger.Debug("gitlab: запрос выполнен", "method", "GET", "status", 200)
type Logger interface {
	// Debug записывает сообщение уровня DEBUG.
	// Клиент пишет сюда каждый HTTP запрос.
	Debug(msg string, args ...any)

	// Info записывает сообщение уровня INFO.
	Info(msg string, args ...any)

	// Warn записывает сообщение уровня WARN.
	// Клиент пишет сюда неуспешные ответы API и использование устаревших методов.
	Warn(msg string, args ...any)

	// Error записывает сообщение уровня ERROR.
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	//
	//	logger.With("host", host).Info("клиент создан")
	With(args ...any) Logger
}
