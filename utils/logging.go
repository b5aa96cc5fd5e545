package utils

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to out at the given level. Unknown
// levels fall back to info.
func NewLogger(out io.Writer, level string) *log.Logger {
	logger := log.New(out)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
