// loggerconfig.go
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LogOutputJSON          = "json"
	LogOutputHumanReadable = "pretty"
)

// Rotation settings for exported log files.
const (
	logExportMaxSizeMB  = 20
	logExportMaxBackups = 5
	logExportMaxAgeDays = 28
)

// BuildLogger creates and returns a new zap-backed Logger.
// Entries are written to stderr so command output on stdout stays machine readable.
// When logExportPath is set, entries are also written as JSON to a rotated file at that path.
func BuildLogger(logLevel LogLevel, logOutputFormat string, logConsoleSeparator string, logExportPath string) (Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var consoleEncoder zapcore.Encoder
	if logOutputFormat == LogOutputHumanReadable {
		consoleCfg := encoderCfg
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleCfg.ConsoleSeparator = logConsoleSeparator
		consoleEncoder = zapcore.NewConsoleEncoder(consoleCfg)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	zapLevel := zap.NewAtomicLevelAt(convertToZapLevel(logLevel))
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), zapLevel),
	}

	if logExportPath != "" {
		path, err := EnsureLogFilePath(logExportPath)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare log export path: %w", err)
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    logExportMaxSizeMB,
			MaxBackups: logExportMaxBackups,
			MaxAge:     logExportMaxAgeDays,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), fileWriter, zapLevel))
	}

	return &defaultLogger{
		logger:   zap.New(zapcore.NewTee(cores...)),
		logLevel: logLevel,
	}, nil
}

// EnsureLogFilePath checks the provided path and prepares it for use with the logger.
// A directory (existing or not) gets a timestamp-based filename appended; an existing file is used as is.
func EnsureLogFilePath(logPath string) (string, error) {
	info, err := os.Stat(logPath)
	if os.IsNotExist(err) || (err == nil && info.IsDir()) {
		logPath = filepath.Join(logPath, "mondo_"+time.Now().Format("20060102_150405")+".log")
	} else if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return "", err
	}

	return logPath, nil
}

// convertToZapLevel converts the custom LogLevel to a zapcore.Level
func convertToZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelDPanic:
		return zap.DPanicLevel
	case LogLevelPanic:
		return zap.PanicLevel
	case LogLevelFatal:
		return zap.FatalLevel
	default:
		return zap.FatalLevel + 1
	}
}
