// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/toeirei/passgen/internal/engine"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/report"
	"github.com/toeirei/passgen/internal/strength"
)

func (a *app) newEntropyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entropy <password>",
		Short: "Report the entropy of an existing password",
		Long: `Report the character distribution entropy of the given text, the pool
entropy of a random password of the same length, and the crack time at the
configured guess rate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw := args[0]
			n := utf8.RuneCountInString(pw)
			r := engine.NewReport(pw, engine.PoolSize, a.cfg.GuessesPerSecond)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, i18n.T("cli.entropy_distribution", r.DistributionEntropy))
			fmt.Fprintln(out, i18n.T("cli.entropy_pool", n, engine.PoolSize, r.PoolEntropy))
			fmt.Fprintln(out, report.Lines(r)[2])
			fmt.Fprintln(out, report.StrengthLine(strength.Of(pw)))
			return nil
		},
	}
}
