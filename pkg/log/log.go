// Package log provides the logging interface used throughout gbcore,
// backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface accepted by the register file,
// memory map and cartridge loader.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text at debug level to stderr.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithWriter returns a Logger like New, writing to w at the
// given level.
func NewWithWriter(w io.Writer, level logrus.Level) Logger {
	l := New().(*logrus.Logger)
	l.SetOutput(w)
	l.SetLevel(level)
	return l
}
