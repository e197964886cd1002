package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitAndAvailable(t *testing.T) {
	Init("en")
	assert.Equal(t, "en", GetLang())
	assert.Equal(t, []string{"de", "en"}, Available())
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	assert.Equal(t, "GENERATE PASSWORD", T("app.generate_button"))
	assert.Equal(t, "Password length cannot exceed 100 characters", T("errors.too_long", 100))
	assert.Equal(t, "Password Entropy: 85.21 bits", T("report.pool_entropy", 85.2101))

	SetLang("de")
	defer Init("en")
	assert.Equal(t, "de", GetLang())
	assert.Equal(t, "PASSWORT ERZEUGEN", T("app.generate_button"))
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	assert.Equal(t, "no.such.message", T("no.such.message"))
}

func TestT_UnknownLanguageUsesEnglish(t *testing.T) {
	Init("xx")
	defer Init("en")
	assert.Equal(t, "quit", T("help.quit"))
}

func TestLocalesDefineSameKeys(t *testing.T) {
	en, err := localeFS.ReadFile("locales/en.yaml")
	assert.NoError(t, err)
	de, err := localeFS.ReadFile("locales/de.yaml")
	assert.NoError(t, err)

	enKeys := keysOf(t, en)
	deKeys := keysOf(t, de)
	assert.ElementsMatch(t, enKeys, deKeys)
}

func keysOf(t *testing.T, data []byte) []string {
	t.Helper()
	var m map[string]string
	require.NoError(t, yaml.Unmarshal(data, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
