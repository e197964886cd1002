// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Passgen.
// This file, tui.go, holds the single generator screen: a length input, the
// generated password, the copy action and the entropy report.
package tui // import "github.com/toeirei/passgen/internal/tui"

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/passgen/internal/clipboard"
	"github.com/toeirei/passgen/internal/engine"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/logging"
	"github.com/toeirei/passgen/internal/report"
	"github.com/toeirei/passgen/internal/strength"
)

// Options configures the generator screen.
type Options struct {
	Engine        *engine.Engine
	Copier        clipboard.Copier
	InitialLength int
	CopyFeedback  time.Duration
}

// copyResetMsg ends the copy confirmation started by trigger seq.
type copyResetMsg struct{ seq uint64 }

// model is the generator screen.
type model struct {
	eng      *engine.Engine
	copier   clipboard.Copier
	feedback *clipboard.Feedback
	delay    time.Duration

	input textinput.Model
	keys  keyMap
	help  help.Model

	result   *engine.Result
	estimate strength.Estimate
	err      error
}

func newModel(opts Options) model {
	if opts.Engine == nil {
		opts.Engine = engine.New(engine.Options{})
	}
	if opts.Copier == nil {
		opts.Copier = clipboard.System{}
	}
	if opts.CopyFeedback <= 0 {
		opts.CopyFeedback = 2 * time.Second
	}
	if opts.InitialLength == 0 {
		opts.InitialLength = 13
	}

	ti := textinput.New()
	ti.Placeholder = i18n.T("app.length_placeholder")
	ti.Prompt = ""
	ti.CharLimit = 8
	ti.Width = 10
	ti.SetValue(strconv.Itoa(opts.InitialLength))
	ti.Focus()

	return model{
		eng:      opts.Engine,
		copier:   opts.Copier,
		feedback: clipboard.NewFeedback(opts.CopyFeedback),
		delay:    opts.CopyFeedback,
		input:    ti,
		keys:     newKeyMap(),
		help:     help.New(),
	}
}

// Init starts the cursor blinking.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and the copy confirmation timer.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResetMsg:
		m.feedback.Expire(msg.seq)
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.feedback.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Generate):
			m.generate()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, m.copy()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) generate() {
	res, err := m.eng.GenerateText(m.input.Value())
	if err != nil {
		logging.Debugf("generation rejected: %v", err)
		m.err = err
		return
	}
	logging.Debugf("generated %d-character password (mode %s)", len(res.Password), m.eng.Mode())
	m.err = nil
	m.result = &res
	m.estimate = strength.Of(res.Password)
	m.keys.Copy.SetEnabled(true)
}

func (m *model) copy() tea.Cmd {
	if err := clipboard.CopyCurrent(m.eng, m.copier); err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	seq := m.feedback.Trigger()
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return copyResetMsg{seq: seq} })
}

// View renders the generator screen.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔐 " + i18n.T("app.title")))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(i18n.T("app.caption")))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render(i18n.T("app.length_label")+" "),
		m.input.View(),
	))
	b.WriteString("\n")
	b.WriteString(buttonStyle.Render(i18n.T("app.generate_button")))
	b.WriteString("\n")

	if m.err != nil {
		title, msg := report.ErrorMessage(m.err)
		b.WriteString("\n")
		if title != "" {
			b.WriteString(errorTitleStyle.Render(title) + ": ")
		}
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render(i18n.T("app.password_label")))
	b.WriteString("\n")
	if m.result != nil {
		b.WriteString(panelStyle.Render(m.result.Password))
	} else {
		b.WriteString(panelStyle.Foreground(colorSubtle).Render(i18n.T("app.password_empty")))
	}
	b.WriteString("\n")

	switch {
	case m.result == nil:
		b.WriteString(disabledButtonStyle.Render("📋 " + i18n.T("app.copy_button")))
	case m.feedback.Active():
		b.WriteString(copiedButtonStyle.Render(i18n.T("app.copied")))
	default:
		b.WriteString(buttonStyle.Render("📋 " + i18n.T("app.copy_button")))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(i18n.T("app.entropy_label")))
	b.WriteString("\n")
	if m.result != nil {
		lines := append(report.Lines(m.result.Report), report.StrengthLine(m.estimate))
		b.WriteString(panelStyle.Render(strings.Join(lines, "\n")))
	} else {
		b.WriteString(panelStyle.Render(""))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return docStyle.Render(b.String())
}

// Run starts the generator screen and blocks until the user quits. Log
// output is held back while the screen is up and written once it closes.
func Run(opts Options) error {
	return run(opts, tea.WithAltScreen())
}

func run(opts Options, progOpts ...tea.ProgramOption) error {
	release := logging.Hold()
	defer release()
	_, err := tea.NewProgram(newModel(opts), progOpts...).Run()
	return err
}
