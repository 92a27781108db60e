package logx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// ParseColorMode accepts "auto", "on"/"always" and "off"/"never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

var levelTags = [2][LevelCount]string{
	// uncolored
	{
		DEBUG: "DEBUG",
		INFO:  " INFO",
		WARN:  " WARN",
		ERROR: "ERROR",
	},
	// colored
	{
		DEBUG: "\033[37mDEBUG\033[0m",
		INFO:  "\033[34m INFO\033[0m",
		WARN:  "\033[33m WARN\033[0m",
		ERROR: "\033[31mERROR\033[0m",
	},
}

var sectionFormats = [2]string{
	"%s %s [%s] ",
	"%s %s [\033[36m%s\033[0m] ",
}

var _ LoggerX = (*ConsoleLogger)(nil)

// ConsoleLogger writes one line per message. It is safe for concurrent
// use.
type ConsoleLogger struct {
	mu    sync.Mutex
	w     io.Writer
	buf   bytes.Buffer
	color int
	min   Level
	now   func() time.Time
}

// NewConsoleLogger logs to f. With ColorAuto, colors are used only when
// f is a terminal; on Windows consoles the escapes are translated by
// go-colorable.
func NewConsoleLogger(f *os.File, min Level, c ColorMode) *ConsoleLogger {
	l := &ConsoleLogger{w: f, min: min, now: time.Now}
	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if c == ColorOn || (c == ColorAuto && tty) {
		l.w = colorable.NewColorable(f)
		l.color = 1
	}
	return l
}

// NewWriterLogger logs uncolored lines to w.
func NewWriterLogger(w io.Writer, min Level) *ConsoleLogger {
	return &ConsoleLogger{w: w, min: min, now: time.Now}
}

func (l *ConsoleLogger) Level() Level {
	return l.min
}

func (l *ConsoleLogger) LogPrintfX(section string, lvl Level, format string, v ...interface{}) {
	if lvl < l.min || lvl >= LevelCount {
		return
	}

	t := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.buf.Reset()
	fmt.Fprintf(&l.buf, sectionFormats[l.color],
		t.Format("15:04:05"), levelTags[l.color][lvl], section)
	fmt.Fprintf(&l.buf, format, v...)
	if b := l.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		l.buf.WriteByte('\n')
	}
	l.w.Write(l.buf.Bytes())
}
