// Package wlog is the compositor-wide logging handle.
package wlog

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

func init() {
	Logger = log.New(os.Stderr)
	SetLevel(os.Getenv("LOG_LEVEL"))
}

// SetLevel sets the log level from a string such as "debug" or "warn".
// An empty or unrecognised value selects info.
func SetLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		Logger.SetLevel(log.DebugLevel)
	case "WARN", "WARNING":
		Logger.SetLevel(log.WarnLevel)
	case "ERROR":
		Logger.SetLevel(log.ErrorLevel)
	case "FATAL":
		Logger.SetLevel(log.FatalLevel)
	default:
		Logger.SetLevel(log.InfoLevel)
	}
}

// SetOutput redirects the logger to w, preserving the current level and prefix.
func SetOutput(w io.Writer) {
	level := Logger.GetLevel()
	prefix := Logger.GetPrefix()
	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
	Logger.SetLevel(level)
}

// With returns a logger carrying the given key/value pairs, for tagging
// log lines with e.g. the output or view they concern.
func With(keyvals ...interface{}) *log.Logger {
	return Logger.With(keyvals...)
}

func Debug(msg interface{}, keyvals ...interface{}) { Logger.Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { Logger.Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { Logger.Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { Logger.Error(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { Logger.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { Logger.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { Logger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { Logger.Errorf(format, args...) }
