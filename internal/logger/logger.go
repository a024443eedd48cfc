// Package logger holds the process-wide logrus logger. It writes to stderr
// so stdout stays reserved for the report lines parsed upstream.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Config selects the level ("debug", "info", "warn", "error") and the
// format ("text" or "json").
type Config struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

var (
	mu  sync.Mutex
	std *logrus.Logger
)

// Init replaces the global logger. Unknown levels fall back to warn.
func Init(cfg Config) *logrus.Logger {
	return InitWithOutput(cfg, os.Stderr)
}

// InitWithOutput is Init writing to w instead of stderr.
func InitWithOutput(cfg Config, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.WarnLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	mu.Lock()
	std = l
	mu.Unlock()
	return l
}

// Get returns the global logger, initializing it with defaults on first use.
func Get() *logrus.Logger {
	mu.Lock()
	l := std
	mu.Unlock()
	if l == nil {
		return Init(Config{Level: "warn", Format: "text"})
	}
	return l
}
