package hooks

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook records the file and line a log entry was written from.
type Hook struct {
	Field string
	// Depth is the number of trailing path segments kept, 0 keeps the full path
	Depth  int
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	file, line := findCaller()
	entry.Data[hook.Field] = fmt.Sprintf("%s:%d", trim(file, hook.Depth), line)
	return nil
}

func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  "source",
		Depth:  2,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// findCaller 跳过 logrus 及本包的栈帧
func findCaller() (string, int) {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "sirupsen/logrus") && !strings.HasSuffix(frame.File, "hooks/filename.go") {
			return frame.File, frame.Line
		}
		if !more {
			return "", 0
		}
	}
}

func trim(file string, depth int) string {
	if depth <= 0 {
		return file
	}
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= depth {
				return file[i+1:]
			}
		}
	}
	return file
}
