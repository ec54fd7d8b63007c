package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Fields map[string]interface{}

var log = newLogger(os.Stdout)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init configures the global logger from LOG_LEVEL (default "info") and
// LOG_FORMAT ("json" by default, "text" for local development). It is
// meant to be called once from main.
func Init() {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
}

// SetOutput redirects log output (used by tests).
func SetOutput(w io.Writer) { log.SetOutput(w) }

// Logger exposes the underlying logger, e.g. for gin's writers.
func Logger() *logrus.Logger { return log }

func entry(fields Fields, err error) *logrus.Entry {
	e := logrus.NewEntry(log)
	if len(fields) > 0 {
		e = e.WithFields(logrus.Fields(fields))
	}
	if err != nil {
		e = e.WithError(err)
	}
	return e
}

// Debug logs a debug message with optional fields.
func Debug(msg string, fields Fields) {
	entry(fields, nil).Debug(msg)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	entry(fields, nil).Info(msg)
}

// Warn logs a warning with optional fields.
func Warn(msg string, fields Fields) {
	entry(fields, nil).Warn(msg)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	entry(fields, err).Error(msg)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	entry(fields, err).Fatal(msg)
}
