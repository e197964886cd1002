// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr so that generated
// passwords on stdout stay pipeable.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "passgen"})

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

// SetDebug switches the package logger between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// SetOutput redirects the package logger and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	L.SetOutput(w)
	return prev
}

// Hold buffers log output until the returned release func is called, which
// restores the previous writer and replays the buffered lines to it. The TUI
// holds logs while it owns the terminal.
func Hold() (release func()) {
	buf := &lockedBuffer{}
	prev := SetOutput(buf)
	var once sync.Once
	return func() {
		once.Do(func() {
			SetOutput(prev)
			_, _ = prev.Write(buf.Bytes())
		})
	}
}

// lockedBuffer is written from whichever goroutine logs.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Clone(b.buf.Bytes())
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
