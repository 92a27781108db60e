// Package logx is a small levelled logger. Messages carry a section name
// so the CLI and the library can share one output stream.
package logx

import (
	"fmt"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	LevelCount
)

var levelNames = [LevelCount]string{
	DEBUG: "debug",
	INFO:  "info",
	WARN:  "warn",
	ERROR: "error",
}

func (l Level) String() string {
	if l < 0 || l >= LevelCount {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts the names printed by Level.String, case-insensitive.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return WARN, nil
	}
	for i, n := range levelNames {
		if n == s {
			return Level(i), nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// LoggerX writes messages for any section.
type LoggerX interface {
	LogPrintfX(section string, lvl Level, format string, v ...interface{})
}

// Logger writes messages for one section.
type Logger interface {
	LogPrintf(lvl Level, format string, v ...interface{})
}

type LogToX struct {
	section string
	logx    LoggerX
}

func (l LogToX) LogPrintf(lvl Level, format string, v ...interface{}) {
	l.logx.LogPrintfX(l.section, lvl, format, v...)
}

func NewLogToX(logx LoggerX, section string) LogToX {
	return LogToX{section: section, logx: logx}
}

var _ Logger = LogToX{}

type nopLogger struct{}

func (nopLogger) LogPrintf(Level, string, ...interface{})           {}
func (nopLogger) LogPrintfX(string, Level, string, ...interface{}) {}

// Discard drops everything.
var Discard = nopLogger{}
