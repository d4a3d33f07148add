package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alumnet/backend/internal/pkg/models"
)

// AppLogger wraps logrus with structured field helpers
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	// JSON formatter for structured logging
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{Logger: l}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

func (al *AppLogger) withFields(fields []Field) *logrus.Entry {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return al.Logger.WithFields(lf)
}

// Info logs an info message with fields
func (al *AppLogger) InfoF(msg string, fields ...Field) {
	al.withFields(fields).Info(msg)
}

// WarnF logs a warning message with fields
func (al *AppLogger) WarnF(msg string, fields ...Field) {
	al.withFields(fields).Warn(msg)
}

// ErrorF logs an error message with fields
func (al *AppLogger) ErrorF(msg string, fields ...Field) {
	al.withFields(fields).Error(msg)
}

// DebugF logs a debug message with fields
func (al *AppLogger) DebugF(msg string, fields ...Field) {
	al.withFields(fields).Debug(msg)
}

// FatalF logs a fatal message with fields and exits
func (al *AppLogger) FatalF(msg string, fields ...Field) {
	al.withFields(fields).Fatal(msg)
}
