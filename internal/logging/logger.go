package logging

import (
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	level  = new(slog.LevelVar)
	output io.Writer = os.Stdout
	mu     sync.RWMutex
)

type Logger struct {
	*slog.Logger
}

// SetLevel changes the level of every logger built from now on, and of the ones already built
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel accepts debug, info, warn and error, case insensitive
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	return l, err
}

// SetOutput changes where loggers built from now on write to. The CLI logs to stderr to keep stdout for results
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func BuildLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	logger := BuildLogger()
	return &Logger{Logger: logger.With("path", ctx.Request.URL.Path)}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
