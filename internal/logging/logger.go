// Package logging is a thin structured-logging facade used across the
// backend. Handlers and services log through Info/Error/Fatal with a
// Fields map; the backend is logrus so LOG_LEVEL and LOG_FORMAT behave
// the same in every binary.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Fields map[string]interface{}

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "text" {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	l.SetOutput(os.Stdout)
	return l
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning with optional fields.
func Warn(msg string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	entry := log.WithFields(logrus.Fields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	entry := log.WithFields(logrus.Fields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Fatal(msg)
}
