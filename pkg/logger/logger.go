package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Code that logs through the logrus
// package functions gets the same settings once InitLogger has run.
var Log = logrus.New()

// InitLogger configures JSON output on stdout at the given level. Unknown
// levels fall back to info.
func InitLogger(level string) {
	initLogger(os.Stdout, level)
}

func initLogger(out io.Writer, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	for _, l := range []*logrus.Logger{Log, logrus.StandardLogger()} {
		l.SetOutput(out)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(lvl)
	}

	if err != nil && level != "" {
		Log.WithField("level", level).Warn("Unknown log level, using info")
	}
}
