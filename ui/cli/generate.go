// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/passgen/internal/clipboard"
	"github.com/toeirei/passgen/internal/engine"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/logging"
	"github.com/toeirei/passgen/internal/report"
	"github.com/toeirei/passgen/internal/strength"
)

func (a *app) newGenerateCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "generate [length]",
		Short: "Generate passwords and print their entropy report",
		Long: `Generate one or more passwords. The length may be given as an argument,
which takes precedence over --length and the configured default.`,
		Aliases: []string{"gen"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args, quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the passwords")
	return cmd
}

// runGenerate prints cfg.Count passwords, each followed by its report unless
// quiet, and copies the last one when configured to.
func (a *app) runGenerate(cmd *cobra.Command, args []string, quiet bool) error {
	generate := func() (engine.Result, error) { return a.eng.Generate(a.cfg.Length) }
	if len(args) == 1 {
		generate = func() (engine.Result, error) { return a.eng.GenerateText(args[0]) }
	}

	out := cmd.OutOrStdout()
	for i := 0; i < a.cfg.Count; i++ {
		res, err := generate()
		if err != nil {
			return err
		}
		logging.Debugf("generated %d-character password (mode %s)", len(res.Password), a.eng.Mode())

		if quiet {
			fmt.Fprintln(out, res.Password)
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, res.Password)
		fmt.Fprintln(out, report.Format(res.Report))
		fmt.Fprintln(out, report.StrengthLine(strength.Of(res.Password)))
	}

	if a.cfg.Copy {
		if err := clipboard.CopyCurrent(a.eng, a.copier); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.copied"))
	}
	return nil
}
