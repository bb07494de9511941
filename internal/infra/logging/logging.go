package logging

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// New builds the process-wide structured logger. Unparseable levels fall
// back to info.
func New(level string, json bool) *charmlog.Logger {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if lvl, err := charmlog.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	if json {
		logger.SetFormatter(charmlog.JSONFormatter)
	}
	return logger
}
