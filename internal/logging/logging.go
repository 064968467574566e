// Package logging is a small leveled logger on top of the standard log package.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level is a log severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

// SetLevel parses and sets the global level. Unknown names are reported and ignored.
func SetLevel(s string) error {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("unknown log level %q", s)
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	return nil
}

// CurrentLevel returns the active level.
func CurrentLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

// SetOutput redirects the logger.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

// Setup sends log output to filename. An empty filename keeps stderr.
// The returned cleanup closes the file.
func Setup(filename string) (cleanup func(), err error) {
	if filename == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	baseLogger.SetOutput(f)
	baseLogger.SetFlags(log.LstdFlags | log.Lshortfile)
	return func() {
		baseLogger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func logf(l Level, format string, args ...interface{}) {
	if CurrentLevel() > l {
		return
	}
	prefix := "INFO"
	switch l {
	case LevelDebug:
		prefix = "DEBUG"
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	// A message without args is printed as is so literal % survives.
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", prefix, format)
		return
	}
	baseLogger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs at debug level how long a phase took.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
