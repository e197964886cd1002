// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package strength scores passwords with zxcvbn, which looks for dictionary
// words, keyboard walks and repeats that the pool-based figures ignore.
package strength

import "github.com/nbutton23/zxcvbn-go"

// Estimate is a pattern-aware strength estimate.
type Estimate struct {
	Entropy          float64 // bits
	Score            int     // 0 (weakest) to 4
	CrackTimeSeconds float64
	CrackTimeDisplay string
}

// Of estimates the strength of password. userInputs are extra words, such
// as a user name, that an attacker is assumed to know.
func Of(password string, userInputs ...string) Estimate {
	if password == "" {
		return Estimate{CrackTimeDisplay: "instant"}
	}
	m := zxcvbn.PasswordStrength(password, userInputs)
	return Estimate{
		Entropy:          m.Entropy,
		Score:            m.Score,
		CrackTimeSeconds: m.CrackTime,
		CrackTimeDisplay: m.CrackTimeDisplay,
	}
}
