package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/toeirei/passgen/internal/config"
)

// isolate points the user config dir at an empty temp dir and runs the test
// from another empty dir so no real passgen.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.Default(), got)
	assert.NoError(t, got.Validate())
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "length: 24\nmode: uniform\nlanguage: de\ncopy_feedback: 500ms\nguesses_per_second: 1e6\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, 24, got.Length)
	assert.Equal(t, "uniform", got.Mode)
	assert.Equal(t, "de", got.Language)
	assert.Equal(t, 500*time.Millisecond, got.CopyFeedback)
	assert.Equal(t, 1e6, got.GuessesPerSecond)
	assert.Equal(t, 1, got.Count, "unset keys keep their defaults")
}

func TestLoadConfig_UserConfigDir(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "passgen")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "passgen.yaml"), []byte("count: 3\n"), 0o600))

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &missing)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("length: 24\n"), 0o600))
	t.Setenv("PASSGEN_LENGTH", "42")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Length)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PASSGEN_LENGTH", "42")

	cmd := &cobra.Command{}
	cmd.Flags().Int("length", 13, "")
	cmd.Flags().Float64("guesses-per-second", 1e9, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--length", "50", "--guesses-per-second", "1000"}))

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Length)
	assert.Equal(t, 1000.0, got.GuessesPerSecond)
}

func TestLoadConfig_UnchangedFlagDoesNotMaskFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("length: 24\n"), 0o600))

	cmd := &cobra.Command{}
	cmd.Flags().Int("length", 13, "")

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, 24, got.Length)
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Default()
	c.Length = 32
	c.Language = "de"
	path, err := cfg.WriteConfigFile(&c, false)
	require.NoError(t, err)

	want, err := cfg.GetConfigPath(false)
	require.NoError(t, err)
	assert.Equal(t, want, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestValidate(t *testing.T) {
	c := cfg.Default()
	require.NoError(t, c.Validate())

	bad := c
	bad.Mode = "dice"
	bad.GuessesPerSecond = 0
	bad.Count = 0
	bad.CopyFeedback = 0
	err := bad.Validate()
	require.Error(t, err)
	for _, frag := range []string{"dice", "guesses_per_second", "count", "copy_feedback"} {
		assert.Contains(t, err.Error(), frag)
	}
}
