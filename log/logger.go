// Package log filters log lines by the [level] prefix of the message.
//
//	log.Printf("[warn] invalid geometry for feature %d", id)
//
// Lines without a known level are always written.
package log

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

type Level string

const (
	LDebug    = Level("debug")
	LProgress = Level("progress")
	LStep     = Level("step")
	LInfo     = Level("info")
	LWarn     = Level("warn")
	LError    = Level("error")
	LFatal    = Level("fatal")
)

// rank orders levels from verbose to severe.
var rank = map[Level]int{
	LDebug:    0,
	LProgress: 1,
	LStep:     2,
	LInfo:     3,
	LWarn:     4,
	LError:    5,
	LFatal:    6,
}

var DefaultLogger *log.Logger
var defaultFilter = &filter{
	start:    time.Now(),
	out:      os.Stderr,
	minLevel: LProgress,
}

func init() {
	DefaultLogger = log.New(defaultFilter, "", 0)
}

type filter struct {
	mu       sync.Mutex
	start    time.Time
	out      io.Writer
	minLevel Level
}

// lineLevel returns the level of the first [...] in line, or false if there
// is no known level.
func lineLevel(line []byte) (Level, bool) {
	start := bytes.IndexByte(line, '[')
	if start < 0 {
		return "", false
	}
	end := bytes.IndexByte(line[start:], ']')
	if end < 0 {
		return "", false
	}
	lvl := Level(line[start+1 : start+end])
	_, ok := rank[lvl]
	return lvl, ok
}

func (f *filter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lvl, ok := lineLevel(p); ok && rank[lvl] < rank[f.minLevel] {
		return len(p), nil
	}

	// log.Logger calls Write once per line
	now := time.Now()
	elapsed := now.Sub(f.start).Truncate(time.Second)
	b := bytes.Buffer{}
	fmt.Fprintf(&b, "[%s] %d:%02d:%02d ",
		now.Format(time.RFC3339),
		int(elapsed.Hours()),
		int(elapsed.Minutes())%60,
		int(elapsed.Seconds())%60,
	)
	b.Write(p)
	if _, err := f.out.Write(b.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// SetMinLevel hides all lines below lvl.
func SetMinLevel(lvl Level) {
	defaultFilter.mu.Lock()
	defaultFilter.minLevel = lvl
	defaultFilter.mu.Unlock()
}

// SetOutput redirects all log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	defaultFilter.mu.Lock()
	defaultFilter.out = w
	defaultFilter.mu.Unlock()
}

func Println(v ...interface{}) {
	DefaultLogger.Println(v...)
}

func Printf(format string, v ...interface{}) {
	DefaultLogger.Printf(format, v...)
}

func Fatal(v ...interface{}) {
	DefaultLogger.Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	DefaultLogger.Fatalf(format, v...)
}

// Step logs the start of name and returns a func that logs the end with the
// duration.
func Step(name string) func() {
	start := time.Now()
	Println("[step] Starting:", name)
	return func() {
		Printf("[step] Finished: %s in %s", name, time.Since(start))
	}
}
