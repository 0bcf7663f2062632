package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"
)

const RequestIDKey = "request_id"

var (
	level            = new(slog.LevelVar)
	output io.Writer = os.Stdout
)

type Logger struct {
	*slog.Logger
}

// Configure sets the level and destination shared by every logger built afterwards. An empty logFile keeps logging
// on stdout, otherwise the file is rotated once it grows past 100MB.
func Configure(logLevel, logFile string) error {
	var parsedLevel slog.Level
	if err := parsedLevel.UnmarshalText([]byte(strings.TrimSpace(logLevel))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	level.Set(parsedLevel)

	if logFile == "" {
		output = os.Stdout
	} else {
		output = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}
	return nil
}

// Output is the destination chosen by Configure, for writers that do not go through slog such as the access log.
func Output() io.Writer {
	return output
}

func BuildLogger() *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	logger = &Logger{Logger: logger.With("path", ctx.Request.URL.Path)}
	if requestID := ctx.GetString(RequestIDKey); requestID != "" {
		logger = &Logger{Logger: logger.With(RequestIDKey, requestID)}
	}
	return logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
