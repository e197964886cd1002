// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import "math"

// DefaultGuessesPerSecond is the brute-force rate used for crack time estimates.
const DefaultGuessesPerSecond = 1e9

// DistributionEntropy returns the Shannon entropy, in bits per character, of
// the character frequencies observed in password. Characters are counted as
// runes. An empty password has zero entropy.
func DistributionEntropy(password string) float64 {
	counts := make(map[rune]int)
	n := 0
	for _, r := range password {
		counts[r]++
		n++
	}
	if n == 0 {
		return 0
	}

	var h float64
	for _, c := range counts {
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}
	// A single repeated symbol yields -0.
	if h == 0 {
		return 0
	}
	return h
}

// PoolEntropy returns length * log2(poolSize): the entropy in bits of a
// uniformly random string of that length over a poolSize-symbol alphabet.
func PoolEntropy(length, poolSize int) float64 {
	if length <= 0 || poolSize <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// EstimateCrackTimeSeconds returns the average time to brute-force a secret
// of the given entropy, assuming the search succeeds halfway through the
// keyspace. A non-positive rate falls back to DefaultGuessesPerSecond.
func EstimateCrackTimeSeconds(bits, guessesPerSecond float64) float64 {
	if guessesPerSecond <= 0 {
		guessesPerSecond = DefaultGuessesPerSecond
	}
	return math.Exp2(bits-1) / guessesPerSecond
}

// Report holds the entropy figures derived from one generated password.
type Report struct {
	PoolEntropy         float64 // bits
	DistributionEntropy float64 // bits per character
	CrackTimeSeconds    float64
	GuessesPerSecond    float64
}

// NewReport derives a Report for password, assuming it was drawn from a pool
// of poolSize symbols.
func NewReport(password string, poolSize int, guessesPerSecond float64) Report {
	if guessesPerSecond <= 0 {
		guessesPerSecond = DefaultGuessesPerSecond
	}
	length := len([]rune(password))
	bits := PoolEntropy(length, poolSize)
	return Report{
		PoolEntropy:         bits,
		DistributionEntropy: DistributionEntropy(password),
		CrackTimeSeconds:    EstimateCrackTimeSeconds(bits, guessesPerSecond),
		GuessesPerSecond:    guessesPerSecond,
	}
}
