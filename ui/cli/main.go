// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the persistent flags shared by every
// subcommand and the service wiring done before any command runs.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/passgen/buildvars"
	"github.com/toeirei/passgen/internal/clipboard"
	"github.com/toeirei/passgen/internal/config"
	"github.com/toeirei/passgen/internal/engine"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/logging"
	"github.com/toeirei/passgen/internal/report"
	"github.com/toeirei/passgen/internal/tui"
	"golang.org/x/term"
)

// deps are the collaborators a command tree runs against. Tests replace them.
type deps struct {
	copier     clipboard.Copier
	isTerminal func() bool
	runTUI     func(tui.Options) error
	// engineOpts carries the random source; mode and rate come from config.
	engineOpts engine.Options
}

func defaultDeps() deps {
	return deps{
		copier:     clipboard.System{},
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		runTUI:     tui.Run,
	}
}

// app is the state shared by the commands of one root command.
type app struct {
	deps
	cfgFile string
	cfg     config.Config
	eng     *engine.Engine
}

// Execute runs the CLI entrypoint and prints a localized message for
// failures. The returned error only signals the exit status.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		title, msg := report.ErrorMessage(err)
		if title != "" {
			msg = title + ": " + msg
		}
		fmt.Fprintln(rootCmd.ErrOrStderr(), msg)
		return err
	}
	return nil
}

// NewRootCmd creates a fresh command tree wired to the real clipboard and
// terminal.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDeps())
}

func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Passgen generates random passwords and reports their entropy.",
		Long: `Passgen draws passwords from a fixed pool of lowercase and uppercase
letters, digits and punctuation, and reports the pool entropy, the Shannon
entropy of the realized characters and an estimated brute-force crack time.

Running without a subcommand launches the interactive screen when attached
to a terminal, and behaves like "generate" otherwise.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setupDefaultServices,
		Args:              cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && a.isTerminal() {
				return a.runTUI(tui.Options{
					Engine:        a.eng,
					Copier:        a.copier,
					InitialLength: a.cfg.Length,
					CopyFeedback:  a.cfg.CopyFeedback,
				})
			}
			return a.runGenerate(cmd, args, false)
		},
	}
	cmd.Version = buildvars.VersionOrDefault("dev")

	defaults := config.Default()
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is <user config dir>/passgen/passgen.yaml)")
	pf.IntP("length", "l", defaults.Length, fmt.Sprintf("password length (%d-%d)", engine.MinLength, engine.MaxLength))
	pf.IntP("count", "n", defaults.Count, "number of passwords to generate")
	pf.String("mode", defaults.Mode, `sampling mode: "shuffle" (no repeated characters) or "uniform"`)
	pf.Float64("guesses-per-second", defaults.GuessesPerSecond, "attacker guess rate used for crack time estimates")
	pf.String("language", defaults.Language, `output language ("en", "de")`)
	pf.BoolP("copy", "c", false, "copy the last generated password to the clipboard")
	pf.Duration("copy-feedback", defaults.CopyFeedback, "how long the interactive screen shows the copy confirmation")
	pf.BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(a.newGenerateCmd())
	cmd.AddCommand(a.newEntropyCmd())
	cmd.AddCommand(a.newTUICmd())
	cmd.AddCommand(a.newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupDefaultServices loads configuration and initializes logging,
// localization and the engine before any command runs.
func (a *app) setupDefaultServices(cmd *cobra.Command, _ []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.SetDebug(a.cfg.Verbose)
	i18n.Init(a.cfg.Language)

	mode, err := engine.ParseMode(a.cfg.Mode)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	opts := a.engineOpts
	opts.Mode = mode
	opts.GuessesPerSecond = a.cfg.GuessesPerSecond
	a.eng = engine.New(opts)

	logging.Debugf("config loaded: length=%d count=%d mode=%s rate=%g language=%s",
		a.cfg.Length, a.cfg.Count, mode, a.cfg.GuessesPerSecond, a.cfg.Language)
	return nil
}

// getConfigPathFromCli returns the --config path when the flag was set.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func (a *app) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive generator screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.isTerminal() {
				return errors.New("the interactive screen needs a terminal")
			}
			return a.runTUI(tui.Options{
				Engine:        a.eng,
				Copier:        a.copier,
				InitialLength: a.cfg.Length,
				CopyFeedback:  a.cfg.CopyFeedback,
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildvars.VersionOrDefault("dev"))
		},
	}
}
