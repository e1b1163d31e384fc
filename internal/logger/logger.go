package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers guarda as instâncias por nome (app, audit, error)
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	config *LogConfig
)

// LogConfig define a configuração do sistema de logs
type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json ou text
	Output     string // file, stdout ou both
	LogPath    string // diretório dos arquivos de log
	AppFile    string
	AuditFile  string
	ErrorFile  string
	MaxSize    int  // MB por arquivo
	MaxBackups int  // quantidade de arquivos antigos mantidos
	MaxAge     int  // dias
	Compress   bool // comprimir arquivos rotacionados
}

// DefaultConfig retorna a configuração padrão de logs
func DefaultConfig() *LogConfig {
	return &LogConfig{
		Level:      "info",
		Format:     "json",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
}

// Init inicializa o sistema de logs com a configuração fornecida
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}

// GetLogger retorna o logger pelo nome (app, audit, error)
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("failed to initialize logger: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := createLogger(name)
	loggers[name] = logger
	return logger
}

// createLogger monta um logger com rotação de arquivo e escrita assíncrona
func createLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	var writers []io.Writer

	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	// Escrita via hook assíncrono para não bloquear o handling de requests
	// quando o I/O de arquivo estiver lento.
	if len(writers) > 0 {
		logger.AddHook(NewAsyncHook(writers, 1000))
		logger.SetOutput(io.Discard)
	}

	return logger
}

// logFilePath retorna o caminho do arquivo de log pelo nome do logger
func logFilePath(name string) string {
	var filename string
	switch name {
	case "app":
		filename = config.AppFile
	case "audit":
		filename = config.AuditFile
	case "error":
		filename = config.ErrorFile
	default:
		filename = fmt.Sprintf("%s.log", name)
	}
	return filepath.Join(config.LogPath, filename)
}

// GetAppLogger retorna o logger principal da aplicação
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetAuditLogger retorna o logger de auditoria (ações de usuários)
func GetAuditLogger() *logrus.Logger {
	return GetLogger("audit")
}

// GetErrorLogger retorna o logger de erros
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
