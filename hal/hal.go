// Package hal provides the host-side surroundings of the emulated chip:
// the pixel store it renders into, a desktop window presenting that store,
// a headless runner, and line logging.
package hal

import (
	"fmt"
	"os"
	"sync"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// NewLogger returns a Logger writing to stdout.
func NewLogger() Logger {
	return &stdoutLogger{w: os.Stdout}
}

type stdoutLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *stdoutLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *stdoutLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
