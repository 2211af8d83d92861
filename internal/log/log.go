// Package log is a small leveled diagnostic logger. Parsing never depends on
// it; it only carries observability events such as locale-table merge
// conflicts.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level controls how much diagnostic output is emitted.
type Level int

const (
	Off Level = iota
	Basic
	Detailed
	Trace
	Wire
)

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Basic:
		return "basic"
	case Detailed:
		return "detailed"
	case Trace:
		return "trace"
	case Wire:
		return "wire"
	}
	return "unknown"
}

// LevelFromInt clamps an integer (typically a -v count or flag value) to a
// valid Level.
func LevelFromInt(n int) Level {
	switch {
	case n <= 0:
		return Off
	case n == 1:
		return Basic
	case n == 2:
		return Detailed
	case n == 3:
		return Trace
	default:
		return Wire
	}
}

var (
	mu    sync.Mutex
	level = Off
	out   io.Writer = os.Stderr
)

func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

func CurrentLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// SetOutput redirects diagnostics, primarily for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func logf(min Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level < min {
		return
	}
	fmt.Fprintf(out, format+"\n", args...)
}

func Basicf(format string, args ...any)    { logf(Basic, format, args...) }
func Detailedf(format string, args ...any) { logf(Detailed, format, args...) }
func Tracef(format string, args ...any)    { logf(Trace, format, args...) }
func Wiref(format string, args ...any)     { logf(Wire, format, args...) }
