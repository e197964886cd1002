package tui

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/passgen/internal/clipboard"
	"github.com/toeirei/passgen/internal/engine"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/logging"
)

func newTestModel(t *testing.T, mem *clipboard.Memory) model {
	t.Helper()
	i18n.Init("en")
	eng := engine.New(engine.Options{Rand: rand.New(rand.NewPCG(1, 2))})
	return newModel(Options{Engine: eng, Copier: mem, CopyFeedback: 20 * time.Millisecond})
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	require.True(t, ok)
	return mm, cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	copyK = tea.KeyMsg{Type: tea.KeyCtrlY}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestModel_DefaultLengthGenerates(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	assert.Equal(t, "13", m.input.Value())

	m, _ = send(t, m, enter)
	require.NotNil(t, m.result)
	assert.Len(t, m.result.Password, 13)
	assert.NoError(t, m.err)

	view := m.View()
	assert.Contains(t, view, m.result.Password)
	assert.Contains(t, view, "Password Entropy: 85.21 bits")
	assert.Contains(t, view, "Crack Time (1B guesses/sec)")
}

func TestModel_TypedLength(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m.input.SetValue("")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42")})
	assert.Equal(t, "42", m.input.Value())

	m, _ = send(t, m, enter)
	require.NotNil(t, m.result)
	assert.Len(t, m.result.Password, 42)
}

func TestModel_InvalidLengthsShowErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7", "at least 8 characters"},
		{"101", "cannot exceed 100"},
		{"abc", "Please enter a valid number"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			m := newTestModel(t, &clipboard.Memory{})
			m.input.SetValue(tc.input)
			m, _ = send(t, m, enter)
			assert.Nil(t, m.result)
			require.Error(t, m.err)
			assert.Contains(t, m.View(), tc.want)
		})
	}
}

func TestModel_ErrorKeepsPreviousPassword(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	m, _ = send(t, m, enter)
	prev := m.result.Password

	m.input.SetValue("5")
	m, _ = send(t, m, enter)
	require.Error(t, m.err)
	assert.Equal(t, prev, m.result.Password)
}

func TestModel_CopyDisabledUntilGenerated(t *testing.T) {
	mem := &clipboard.Memory{}
	m := newTestModel(t, mem)

	m, _ = send(t, m, copyK)
	_, n := mem.Text()
	assert.Zero(t, n)
	assert.False(t, m.feedback.Active())
}

func TestModel_CopyShowsConfirmationThenResets(t *testing.T) {
	mem := &clipboard.Memory{}
	m := newTestModel(t, mem)
	m, _ = send(t, m, enter)

	m, cmd := send(t, m, copyK)
	require.NotNil(t, cmd)
	text, _ := mem.Text()
	assert.Equal(t, m.result.Password, text)
	assert.True(t, m.feedback.Active())
	assert.Contains(t, m.View(), "COPIED!")

	msg := cmd()
	assert.IsType(t, copyResetMsg{}, msg)
	m, _ = send(t, m, msg)
	assert.False(t, m.feedback.Active())
	assert.NotContains(t, m.View(), "COPIED!")
	assert.Contains(t, m.View(), "COPY TO CLIPBOARD")
}

func TestModel_ResetMessageClearsConfirmationWithoutTimer(t *testing.T) {
	i18n.Init("en")
	eng := engine.New(engine.Options{Rand: rand.New(rand.NewPCG(1, 2))})
	m := newModel(Options{Engine: eng, Copier: &clipboard.Memory{}, CopyFeedback: time.Hour})
	m, _ = send(t, m, enter)

	m, first := send(t, m, copyK)
	m, second := send(t, m, copyK)
	require.NotNil(t, first)
	require.NotNil(t, second)

	// A stale tick from the first copy leaves the newer confirmation up.
	m, _ = send(t, m, copyResetMsg{seq: 1})
	assert.Contains(t, m.View(), "COPIED!")

	m, _ = send(t, m, copyResetMsg{seq: 2})
	assert.NotContains(t, m.View(), "COPIED!")
}

func TestRun_HoldsLogsWhileScreenIsUp(t *testing.T) {
	i18n.Init("en")
	var logs bytes.Buffer
	prev := logging.SetOutput(&logs)
	logging.SetDebug(true)
	t.Cleanup(func() {
		logging.SetOutput(prev)
		logging.SetDebug(false)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var screen bytes.Buffer
	eng := engine.New(engine.Options{Rand: rand.New(rand.NewPCG(1, 2))})
	err := run(Options{Engine: eng, Copier: &clipboard.Memory{}},
		tea.WithContext(ctx),
		tea.WithInput(strings.NewReader("\r\x03")),
		tea.WithOutput(&screen),
	)
	require.NoError(t, err)

	_, ok := eng.Current()
	require.True(t, ok, "enter should have generated a password")
	assert.NotContains(t, screen.String(), "generated 13-character password")
	assert.Contains(t, logs.String(), "generated 13-character password")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, &clipboard.Memory{})
	_, cmd := send(t, m, esc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
