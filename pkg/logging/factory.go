package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// secretKeys — ключи атрибутов, значения которых не попадают в лог.
var secretKeys = map[string]struct{}{
	"password":      {},
	"private_token": {},
	"private-token": {},
	"access_token":  {},
	"authorization": {},
	"token":         {},
}

// NewLogger создаёт Logger по конфигурации.
//
// Режимы вывода (config.Output):
//   - "stderr" или "": os.Stderr
//   - "file": файл с ротацией через lumberjack (MaxSize, MaxBackups, MaxAge, Compress)
//
// Неизвестный режим и пустой FilePath откатываются на stderr с предупреждением.
func NewLogger(config Config) Logger {
	var w io.Writer

	switch config.Output {
	case OutputFile:
		w = newFileWriter(config)
	case OutputStderr, "":
		w = os.Stderr
	default:
		_, _ = fmt.Fprintf(os.Stderr, "WARNING: неизвестный logging output %q, используется stderr\n", config.Output) //nolint:errcheck // bootstrap stderr
		w = os.Stderr
	}

	return NewLoggerWithWriter(config, w)
}

func newFileWriter(config Config) io.Writer {
	if config.FilePath == "" {
		_, _ = os.Stderr.WriteString("WARNING: logging output=file без filePath, используется stderr\n") //nolint:errcheck // bootstrap stderr
		return os.Stderr
	}

	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "WARNING: не удалось создать директорию логов %q: %v, используется stderr\n", dir, err) //nolint:errcheck // bootstrap stderr
			return os.Stderr
		}
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}

// NewLoggerWithWriter создаёт Logger, пишущий в w.
// Используется в тестах и когда вызывающему нужен свой writer.
func NewLoggerWithWriter(config Config, w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(config.Level),
		ReplaceAttr: maskSecrets,
	}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return NewSlogAdapter(slog.New(handler))
}

// parseLevel возвращает slog.LevelInfo для неизвестных значений.
func parseLevel(level string) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// maskSecrets заменяет значения атрибутов из secretKeys на "***".
func maskSecrets(_ []string, a slog.Attr) slog.Attr {
	if _, ok := secretKeys[strings.ToLower(a.Key)]; ok && a.Value.Kind() == slog.KindString && a.Value.String() != "" {
		return slog.String(a.Key, "***")
	}
	return a
}
