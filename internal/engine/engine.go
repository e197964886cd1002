// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package engine generates passwords from a fixed character pool and reports
// their entropy. Apart from the most recently generated password, held for
// retrieval by callers such as the clipboard copier, the package is a set of
// pure functions.
package engine

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
)

// Length bounds accepted by Generate.
const (
	MinLength = 8
	MaxLength = 100
)

// Mode selects how characters are drawn from the pool.
type Mode string

const (
	// ModeShuffle permutes the pool and takes a prefix, so no character
	// repeats while the length fits in the pool. Longer requests append
	// further independent permutations.
	ModeShuffle Mode = "shuffle"
	// ModeUniform draws every character independently with replacement.
	ModeUniform Mode = "uniform"
)

// ParseMode converts a configuration string into a Mode. The empty string
// selects ModeShuffle.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModeShuffle:
		return ModeShuffle, nil
	case ModeUniform:
		return m, nil
	default:
		return "", fmt.Errorf("unknown sampling mode %q (want %q or %q)", s, ModeShuffle, ModeUniform)
	}
}

// Options configures an Engine. The zero value is usable.
type Options struct {
	Mode             Mode
	GuessesPerSecond float64
	// Rand overrides the random source. When nil a ChaCha8 generator seeded
	// from crypto/rand is used.
	Rand *rand.Rand
}

// Result is one generated password together with its entropy report.
type Result struct {
	Password string
	Report   Report
}

// Engine generates passwords and remembers the last one it produced.
// It is safe for concurrent use.
type Engine struct {
	mode  Mode
	rate  float64
	mu    sync.Mutex
	rng   *rand.Rand
	cur   string
	hasPW bool
}

// New returns an Engine configured by opts.
func New(opts Options) *Engine {
	if opts.Mode == "" {
		opts.Mode = ModeShuffle
	}
	if opts.GuessesPerSecond <= 0 {
		opts.GuessesPerSecond = DefaultGuessesPerSecond
	}
	rng := opts.Rand
	if rng == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:])
		rng = rand.New(rand.NewChaCha8(seed))
	}
	return &Engine{mode: opts.Mode, rate: opts.GuessesPerSecond, rng: rng}
}

// Mode reports the sampling mode in use.
func (e *Engine) Mode() Mode { return e.mode }

// GuessesPerSecond reports the rate used for crack time estimates.
func (e *Engine) GuessesPerSecond() float64 { return e.rate }

// ValidateLength checks n against [MinLength, MaxLength].
func ValidateLength(n int) error {
	switch {
	case n < MinLength:
		return &Error{Kind: TooShort, Input: strconv.Itoa(n)}
	case n > MaxLength:
		return &Error{Kind: TooLong, Input: strconv.Itoa(n)}
	}
	return nil
}

// ParseLength parses a user supplied length and validates its bounds.
// Integers too large for an int are still out of bounds, not invalid input.
func ParseLength(s string) (int, error) {
	text := strings.TrimSpace(s)
	n, err := strconv.Atoi(text)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(text, "-") {
			return 0, &Error{Kind: TooShort, Input: text}
		}
		return 0, &Error{Kind: TooLong, Input: text}
	}
	if err != nil {
		return 0, &Error{Kind: InvalidInput, Input: s}
	}
	if err := ValidateLength(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Generate produces a password of exactly length characters and stores it as
// the current password. Invalid lengths are rejected before any random
// draws and leave the current password untouched.
func (e *Engine) Generate(length int) (Result, error) {
	if err := ValidateLength(length); err != nil {
		return Result{}, err
	}

	e.mu.Lock()
	var pw string
	if e.mode == ModeUniform {
		pw = sampleUniform(e.rng, length)
	} else {
		pw = sampleShuffled(e.rng, length)
	}
	e.cur = pw
	e.hasPW = true
	e.mu.Unlock()

	return Result{Password: pw, Report: NewReport(pw, PoolSize, e.rate)}, nil
}

// GenerateText parses length as text and then behaves like Generate.
func (e *Engine) GenerateText(length string) (Result, error) {
	n, err := ParseLength(length)
	if err != nil {
		return Result{}, err
	}
	return e.Generate(n)
}

// Current returns the most recently generated password. ok is false until
// Generate has succeeded once.
func (e *Engine) Current() (pw string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur, e.hasPW
}

// sampleShuffled takes the first n characters of a uniformly shuffled pool,
// appending further shuffled passes when n exceeds PoolSize.
func sampleShuffled(rng *rand.Rand, n int) string {
	out := make([]byte, 0, n)
	for len(out) < n {
		pool := Pool()
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		out = append(out, pool[:min(n-len(out), len(pool))]...)
	}
	return string(out)
}

func sampleUniform(rng *rand.Rand, n int) string {
	pool := Pool()
	out := make([]byte, n)
	for i := range out {
		out[i] = pool[rng.IntN(len(pool))]
	}
	return string(out)
}
