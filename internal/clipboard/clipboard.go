// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard copies the current password to the system clipboard and
// tracks the short-lived "copied" confirmation shown afterwards.
package clipboard

import (
	"errors"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// ErrNothingToCopy is returned when no password has been generated yet.
var ErrNothingToCopy = errors.New("no password has been generated yet")

// Copier writes text to a clipboard.
type Copier interface {
	WriteAll(text string) error
}

// Source yields the password to copy; *engine.Engine satisfies it.
type Source interface {
	Current() (string, bool)
}

// System is the OS clipboard.
type System struct{}

// WriteAll implements Copier.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard used by tests and headless runs.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

// WriteAll implements Copier.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// Text returns the last copied text and how many copies were made.
func (m *Memory) Text() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.n
}

// CopyCurrent copies the current password of src to c.
func CopyCurrent(src Source, c Copier) error {
	pw, ok := src.Current()
	if !ok {
		return ErrNothingToCopy
	}
	if err := c.WriteAll(pw); err != nil {
		return &CopyError{Err: err}
	}
	return nil
}

// CopyError is returned when the clipboard rejects a write.
type CopyError struct {
	Err error
}

func (e *CopyError) Error() string { return "copy to clipboard: " + e.Err.Error() }

func (e *CopyError) Unwrap() error { return e.Err }

// Feedback holds a confirmation flag that clears itself after a delay.
// Each Trigger starts a new generation; callers driving their own timers
// clear exactly the generation they started with Expire.
type Feedback struct {
	mu     sync.Mutex
	delay  time.Duration
	active bool
	seq    uint64
	timer  *time.Timer
}

// NewFeedback returns a Feedback that resets delay after each Trigger.
func NewFeedback(delay time.Duration) *Feedback {
	return &Feedback{delay: delay}
}

// Trigger sets the flag, (re)starts the reset timer and returns the new
// generation.
func (f *Feedback) Trigger() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
	}
	f.seq++
	f.active = true
	seq := f.seq
	f.timer = time.AfterFunc(f.delay, func() { f.Expire(seq) })
	return seq
}

// Expire clears the flag if seq is still the latest generation. It reports
// whether the flag was cleared.
func (f *Feedback) Expire(seq uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq || !f.active {
		return false
	}
	f.active = false
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	return true
}

// Active reports whether the confirmation is showing.
func (f *Feedback) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Stop cancels a pending reset.
func (f *Feedback) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
