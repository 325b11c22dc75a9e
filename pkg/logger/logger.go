package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global application logger. It is a no-op until Init is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

var (
	base    *zap.Logger
	logFile *os.File
)

type Config struct {
	Debug     bool
	LogToFile bool
	LogsDir   string
}

// Init builds the global logger. Console output always; an additional JSON
// file sink is attached when LogToFile is set.
func Init(cfg Config) error {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(os.Stdout), level),
	}

	if cfg.LogToFile {
		if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		name := filepath.Join(cfg.LogsDir, time.Now().Format("2006-01-02")+".log")
		f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), level))
	}

	base = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Log = base.Sugar()
	return nil
}

// Named returns a child logger with the given name.
func Named(name string) (*zap.SugaredLogger, error) {
	if base == nil {
		return nil, fmt.Errorf("logger is not initialized")
	}
	return base.Named(name).Sugar(), nil
}

// Cleanup flushes buffered log entries and closes the file sink.
func Cleanup() error {
	if base != nil {
		_ = base.Sync()
	}
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
