package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr. Verbose enables debug output.
func New(verbose bool) *logrus.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter returns a text logger writing to w.
func NewWithWriter(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// LogError logs msg and err at error level.
func LogError(logger logrus.FieldLogger, msg string, err error) {
	logger.Errorf("%s: %v", msg, err)
}

// LogFatal logs msg and err, then exits the process.
func LogFatal(logger logrus.FieldLogger, msg string, err error) {
	logger.Fatalf("%s: %v", msg, err)
}

// LogWarn logs msg at warning level.
func LogWarn(logger logrus.FieldLogger, msg string) {
	logger.Warn(msg)
}

// LogInfo logs msg at info level.
func LogInfo(logger logrus.FieldLogger, msg string) {
	logger.Info(msg)
}
