// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Log level names accepted by --log-level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// NewLogger returns a stderr-style logger writing to dst. quiet raises the
// level to warn unless level is already stricter.
func NewLogger(dst io.Writer, level string, quiet bool) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if quiet && lvl < log.WarnLevel {
		lvl = log.WarnLevel
	}
	logger := log.NewWithOptions(dst, log.Options{
		Prefix:          "mininorm",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           lvl,
	})
	return logger, nil
}

// ParseLevel maps a --log-level value to a log.Level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelDebug:
		return log.DebugLevel, nil
	case LevelInfo, "":
		return log.InfoLevel, nil
	case LevelWarn, "warning":
		return log.WarnLevel, nil
	case LevelError:
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("invalid --log-level %q (want debug | info | warn | error)", s)
}

// Warnf logs a formatted warning unless logger is nil.
func Warnf(logger *log.Logger, format string, a ...any) {
	if logger == nil {
		return
	}
	logger.Warnf(format, a...)
}
