// Package logs hands out named loggers sharing one debug switch and one
// output.
package logs

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	debug  atomic.Bool
	output atomic.Value // holds sink
)

type sink struct{ w io.Writer }

func init() {
	output.Store(sink{os.Stderr})
}

// SetDebug toggles Debugf output for every logger.
func SetDebug(on bool) {
	debug.Store(on)
}

// SetOutput redirects every logger, including those created before the call.
func SetOutput(w io.Writer) {
	output.Store(sink{w})
}

// shared forwards writes to whatever SetOutput last stored.
type shared struct{}

func (shared) Write(p []byte) (int, error) {
	return output.Load().(sink).w.Write(p)
}

type Logger struct {
	std *log.Logger
}

// Get returns a logger whose lines are prefixed with name.
func Get(name string) *Logger {
	return &Logger{
		std: log.New(shared{}, name+": ", log.LstdFlags|log.Lmsgprefix),
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	if !debug.Load() {
		return
	}
	l.std.Printf("DEBUG "+format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.std.Printf("INFO "+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.std.Printf("ERROR "+format, args...)
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.std.Fatalf("FATAL "+format, args...)
}
