// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

// Character classes making up the pool. Punctuation is the full printable
// ASCII punctuation set.
const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// PoolSize is the number of distinct characters in the pool.
const PoolSize = len(Lowercase) + len(Uppercase) + len(Digits) + len(Punctuation)

// Pool returns a fresh copy of the character pool in class order.
// Callers may shuffle the returned slice in place.
func Pool() []byte {
	p := make([]byte, 0, PoolSize)
	p = append(p, Lowercase...)
	p = append(p, Uppercase...)
	p = append(p, Digits...)
	p = append(p, Punctuation...)
	return p
}
