// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

var traceEnabled bool

// LevelNames are the accepted log level names, lowest to highest.
var LevelNames = []string{"trace", "debug", "info", "warning", "error", "critical"}

// InitLogger sets up Apex with a custom handler and a log level from the
// RELCHECK_LOG env variable. The --log-level flag may override the level
// later via SetLevelName.
func InitLogger() {
	envLevel := strings.ToLower(os.Getenv("RELCHECK_LOG"))
	if envLevel == "" {
		envLevel = "info"
	}
	log.SetHandler(&CustomHandler{})
	if err := SetLevelName(envLevel); err != nil {
		// A bad env value is not a usage error; fall back quietly.
		log.SetLevel(log.InfoLevel)
	}
}

// SetLevelName sets the process log level from one of LevelNames. An
// unrecognized name is an error so the CLI can reject it as a usage error.
func SetLevelName(name string) error {
	name = strings.ToLower(name)
	traceEnabled = name == "trace"
	switch name {
	case "trace", "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warning":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "critical":
		log.SetLevel(log.FatalLevel)
	default:
		return fmt.Errorf("invalid log level %q, must be one of %v", name, LevelNames)
	}
	return nil
}

// CustomHandler formats log messages and writes to stdout
type CustomHandler struct{}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := e.Message
	level := "?"
	if strings.HasPrefix(message, "TRACE: ") {
		level = "T"
		message = message[7:]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "C"
		}
	}
	fmt.Fprintf(os.Stdout, "%s %s %s\n", timestamp, level, message)
	return nil
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug("TRACE: " + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
