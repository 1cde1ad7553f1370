package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themekit/locale"
	"github.com/opencode-ai/themekit/tokens"
)

// fixedBrand resolves a fixed pair of palettes, mimicking how
// embedding applications supply brands.
type fixedBrand struct {
	name  string
	light tokens.ColorTokens
	dark  tokens.ColorTokens
}

func (b *fixedBrand) Name() string { return b.name }

func (b *fixedBrand) ResolveColors(darkMode bool) tokens.ColorTokens {
	if darkMode {
		return b.dark
	}
	return b.light
}

func newTestBrand(name string) *fixedBrand {
	light := tokens.ColorTokens{Dark: false}
	light.Brand.Main = tokens.MustHex("#1D1C1C")
	dark := tokens.ColorTokens{Dark: true}
	dark.Brand.Main = tokens.MustHex("#EBEAEE")
	return &fixedBrand{name: name, light: light, dark: dark}
}

func supportedLocales() []locale.Localize {
	return []locale.Localize{
		{Tag: locale.Tag{Language: "en", Region: "US"}, DisplayName: "English (US)"},
		{Tag: locale.Tag{Language: "es", Region: "ES"}, DisplayName: "Español"},
	}
}

func TestNewRequiresSupportedLocales(t *testing.T) {
	eng, err := New(newTestBrand("acme"), nil, Options{})
	require.ErrorIs(t, err, ErrNoSupportedLocales)
	require.Nil(t, eng)
}

func TestNewRequiresBrand(t *testing.T) {
	eng, err := New(nil, supportedLocales(), Options{})
	require.ErrorIs(t, err, ErrNilBrand)
	require.Nil(t, eng)
}

func TestNewResolvesInitialLocale(t *testing.T) {
	tests := []struct {
		name string
		hint locale.Tag
		want locale.Tag
	}{
		{"no hint uses default", locale.Tag{}, locale.Tag{Language: "en", Region: "US"}},
		{"exact match", locale.Tag{Language: "es", Region: "ES"}, locale.Tag{Language: "es", Region: "ES"}},
		{"language-only match", locale.Tag{Language: "es", Region: "MX"}, locale.Tag{Language: "es", Region: "ES"}},
		{"no match falls back", locale.Tag{Language: "fr", Region: "FR"}, locale.Tag{Language: "en", Region: "US"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := New(newTestBrand("acme"), supportedLocales(), Options{LocaleHint: tt.hint})
			require.NoError(t, err)
			require.Equal(t, tt.want, eng.Current().Locale)
		})
	}
}

func TestNewComputesInitialTokens(t *testing.T) {
	eng, err := New(newTestBrand("acme"), supportedLocales(), Options{})
	require.NoError(t, err)

	st := eng.Current()
	require.False(t, st.DarkMode)
	require.Equal(t, tokens.MustHex("#1D1C1C"), st.Tokens.Colors.Brand.Main)
	require.Equal(t, tokens.DirectionLTR, st.Tokens.TextDirection)
}

func TestToggleThemeRoundTrip(t *testing.T) {
	eng, err := New(newTestBrand("acme"), supportedLocales(), Options{})
	require.NoError(t, err)
	before := eng.Current()

	st, err := eng.ToggleTheme()
	require.NoError(t, err)
	require.True(t, st.DarkMode)
	require.Equal(t, tokens.MustHex("#EBEAEE"), st.Tokens.Colors.Brand.Main)

	st, err = eng.ToggleTheme()
	require.NoError(t, err)
	require.Equal(t, before.DarkMode, st.DarkMode)
	require.Equal(t, before.Tokens, st.Tokens)
}

func TestUpdateBrandRecomputesForCurrentMode(t *testing.T) {
	eng, err := New(newTestBrand("acme"), supportedLocales(), Options{DarkMode: true})
	require.NoError(t, err)

	other := newTestBrand("other")
	other.dark.Brand.Main = tokens.MustHex("#123456")

	st, err := eng.UpdateBrand(other)
	require.NoError(t, err)
	require.True(t, st.DarkMode)
	require.Equal(t, tokens.MustHex("#123456"), st.Tokens.Colors.Brand.Main)
	require.Equal(t, "other", st.Brand.Name())
}

func TestUpdateBrandRejectsNil(t *testing.T) {
	eng, err := New(newTestBrand("acme"), supportedLocales(), Options{})
	require.NoError(t, err)

	before := eng.Current()
	st, err := eng.UpdateBrand(nil)
	require.ErrorIs(t, err, ErrNilBrand)
	require.Equal(t, before, st)
}

func TestSetThemeLanguage(t *testing.T) {
	eng, err := New(newTestBrand("acme"), supportedLocales(), Options{})
	require.NoError(t, err)

	// Exact match.
	st, err := eng.SetThemeLanguage(locale.Localize{Tag: locale.Tag{Language: "es", Region: "ES"}})
	require.NoError(t, err)
	require.Equal(t, locale.Tag{Language: "es", Region: "ES"}, st.Locale)

	// Unresolvable request falls back to the default locale, silently.
	st, err = eng.SetThemeLanguage(locale.Localize{Tag: locale.Tag{Language: "de", Region: "DE"}})
	require.NoError(t, err)
	require.Equal(t, locale.Tag{Language: "en", Region: "US"}, st.Locale)
}

func TestSetThemeLanguageUpdatesDirection(t *testing.T) {
	supported := append(supportedLocales(),
		locale.Localize{Tag: locale.Tag{Language: "ar", Region: "EG"}, DisplayName: "العربية"})
	eng, err := New(newTestBrand("acme"), supported, Options{})
	require.NoError(t, err)
	require.Equal(t, tokens.DirectionLTR, eng.Current().Tokens.TextDirection)

	st, err := eng.SetThemeLanguage(locale.Localize{Tag: locale.Tag{Language: "ar", Region: "EG"}})
	require.NoError(t, err)
	require.Equal(t, tokens.DirectionRTL, st.Tokens.TextDirection)
}

func TestMutationReturnsCurrentSnapshot(t *testing.T) {
	eng, err := New(newTestBrand("acme"), supportedLocales(), Options{})
	require.NoError(t, err)

	st, err := eng.ToggleTheme()
	require.NoError(t, err)
	require.Equal(t, eng.Current(), st)
}
