package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themekit/locale"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "themekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
brand: high-contrast
dark_mode: true
locale: es-MX
supported_locales:
  - tag: en-US
    name: English (US)
  - tag: es-ES
    name: Español
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "high-contrast", cfg.Brand)
	require.True(t, cfg.DarkMode)
	require.Equal(t, "es-MX", cfg.Locale)
	require.Len(t, cfg.SupportedLocales, 2)
}

func TestLoadRejectsUnknownBrand(t *testing.T) {
	path := writeConfig(t, `
brand: no-such-brand
supported_locales:
  - tag: en-US
    name: English (US)
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown brand")
}

func TestLoadRejectsInvalidLocaleTag(t *testing.T) {
	path := writeConfig(t, `
supported_locales:
  - tag: "not a locale"
    name: Broken
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestBuild(t *testing.T) {
	path := writeConfig(t, `
brand: default
locale: es-MX
supported_locales:
  - tag: en-US
    name: English (US)
  - tag: es-ES
    name: Español
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	eng, err := cfg.Build()
	require.NoError(t, err)

	st := eng.Current()
	require.Equal(t, "default", st.Brand.Name())
	require.False(t, st.DarkMode)
	// es-MX resolves to es-ES by language.
	require.Equal(t, locale.Tag{Language: "es", Region: "ES"}, st.Locale)
	require.Len(t, st.SupportedLocales, 2)
}
