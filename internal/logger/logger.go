// Package logger provides the process-wide structured logger.
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. Until Init is called it discards everything so
// packages can log unconditionally, including from tests.
var Log = discard()

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the global logger. An unknown level falls back to info;
// format "json" selects the JSON formatter, anything else plain text.
func Init(level, format string, out io.Writer) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	l.SetOutput(out)
	Log = l
}
