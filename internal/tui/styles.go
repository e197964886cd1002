// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Passgen.
// This file defines the shared lipgloss styles used by the generator screen.
package tui // import "github.com/toeirei/passgen/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorNeon      = lipgloss.Color("#39FF14")
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorDarkGray  = lipgloss.Color("#1E1E1E")
	colorLightGray = lipgloss.Color("#2A2A2A")
	colorSubtle    = lipgloss.Color("240")
	colorError     = lipgloss.Color("196")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 4)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorNeon).
			Bold(true)

	captionStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Italic(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			MarginTop(1)

	// Read-only output panels
	panelStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorDarkGray).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorLightGray).
			Padding(1, 2).
			Width(72)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(colorWhite).
			Bold(true).
			Padding(0, 3).
			MarginTop(1)

	disabledButtonStyle = buttonStyle.
				Foreground(colorSubtle).
				Background(colorLightGray)

	copiedButtonStyle = buttonStyle.
				Background(colorNeon)

	errorTitleStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(colorError)
	helpStyle       = lipgloss.NewStyle().Foreground(colorSubtle).MarginTop(1)
)
