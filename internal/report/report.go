// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report renders entropy reports as localized text.
package report

import (
	"strconv"
	"strings"

	"github.com/toeirei/passgen/internal/engine"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/strength"
)

// Lines returns the report as display lines: pool entropy to two decimals,
// distribution entropy to four decimals and crack time in scientific notation.
func Lines(r engine.Report) []string {
	return []string{
		i18n.T("report.pool_entropy", r.PoolEntropy),
		i18n.T("report.distribution_entropy", r.DistributionEntropy),
		i18n.T("report.crack_time", Rate(r.GuessesPerSecond), r.CrackTimeSeconds),
	}
}

// Format joins Lines with newlines.
func Format(r engine.Report) string {
	return strings.Join(Lines(r), "\n")
}

// StrengthLine renders a pattern-aware estimate.
func StrengthLine(e strength.Estimate) string {
	return i18n.T("report.strength", e.Entropy, e.Score, e.CrackTimeDisplay)
}

var rateUnits = []struct {
	scale  float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// Rate abbreviates a guess rate for labels, e.g. 1e9 becomes "1B" and
// 2.5e6 becomes "2.5M".
func Rate(guessesPerSecond float64) string {
	for _, u := range rateUnits {
		if guessesPerSecond >= u.scale {
			return strconv.FormatFloat(guessesPerSecond/u.scale, 'g', 4, 64) + u.suffix
		}
	}
	return strconv.FormatFloat(guessesPerSecond, 'g', 4, 64)
}
