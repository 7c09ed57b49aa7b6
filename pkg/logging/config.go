package logging

// Форматы вывода.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Уровни логирования.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Типы вывода.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию для Config.
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/gitlab-client.log"
	DefaultMaxSize    = 100 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// Config содержит настройки логирования.
type Config struct {
	// Format: "json" или "text". По умолчанию "text".
	Format string

	// Level: "debug", "info", "warn", "error". По умолчанию "info".
	Level string

	// Output: "stderr" или "file". По умолчанию "stderr".
	Output string

	// FilePath задаёт путь к файлу логов при Output="file".
	FilePath string

	// MaxSize задаёт размер файла в мегабайтах, после которого он ротируется.
	MaxSize int

	// MaxBackups задаёт количество хранимых ротированных файлов.
	MaxBackups int

	// MaxAge задаёт возраст ротированных файлов в днях.
	MaxAge int

	// Compress включает gzip для ротированных файлов.
	Compress bool
}

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}
