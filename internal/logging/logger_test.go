package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// swapLogger replaces L with a buffer-backed logger for the duration of the test.
func swapLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	prevOut := out
	out = &buf
	t.Cleanup(func() {
		L = prev
		out = prevOut
	})
	return &buf
}

func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t)
	SetDebug(true)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	assert.Contains(t, out, "hello dbg")
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "err E")
}

func TestSetDebug_FalseSuppressesDebug(t *testing.T) {
	buf := swapLogger(t)
	SetDebug(false)

	Debugf("hidden")
	Infof("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetOutput(t *testing.T) {
	buf := swapLogger(t)
	var other bytes.Buffer
	prev := SetOutput(&other)
	assert.Same(t, buf, prev)

	Infof("redirected")
	assert.Contains(t, other.String(), "redirected")
	assert.Empty(t, buf.String())
}

func TestHold_BuffersUntilRelease(t *testing.T) {
	buf := swapLogger(t)
	SetDebug(true)

	release := Hold()
	Debugf("while held")
	assert.Empty(t, buf.String())

	release()
	assert.Contains(t, buf.String(), "while held")

	release()
	Infof("after")
	assert.Equal(t, 1, strings.Count(buf.String(), "while held"))
	assert.Contains(t, buf.String(), "after")
}
