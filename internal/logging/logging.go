package logging

import (
	"io"
	"os"
	"strings"

	"github.com/echenim/bookview/internal/config"
	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger from cfg and returns it.
// An unknown level falls back to info.
func Setup(cfg config.Config) *logrus.Logger {
	return configure(logrus.StandardLogger(), cfg, os.Stderr)
}

func configure(l *logrus.Logger, cfg config.Config, out io.Writer) *logrus.Logger {
	l.SetOutput(out)

	if strings.EqualFold(cfg.Logging.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return l
}
