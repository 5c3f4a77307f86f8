package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/content"
	"github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en.json":        {Data: []byte(`{"greeting":{"morning":"Good morning"},"hero":{"title":"Hi"}}`)},
		"fr.json":        {Data: []byte(`{"greeting":{"morning":"Bonjour"},"hero":{"title":"Salut"}}`)},
		"es.json":        {Data: []byte(`{"greeting":`)},
		"greetings.json": {Data: []byte(`{"de":{"morning":"Guten Morgen","generic":"Hallo"}}`)},
	}
}

func TestLoad(t *testing.T) {
	b := Load(testFS(), []string{"en", "fr", "pt", "es"}, logging.NewDiscardLogger())

	assert.Len(t, b.full, 2, "pt is missing and es is malformed")
	assert.Contains(t, b.full, "en")
	assert.Contains(t, b.full, "fr")
	assert.Equal(t, "Hallo", b.greetings["de"]["generic"])
}

func TestCatalogs_FullyLocalized(t *testing.T) {
	b := Load(testFS(), []string{"en", "fr"}, nil)
	cats := b.Catalogs("fr", true)

	s, ok := cats.Full.Lookup("hero.title")
	require.True(t, ok)
	assert.Equal(t, "Salut", s)

	s, ok = cats.UI.Lookup("hero.title")
	require.True(t, ok)
	assert.Equal(t, "Salut", s)
}

func TestCatalogs_UIFallsBackToEnglish(t *testing.T) {
	b := Load(testFS(), []string{"en", "fr"}, nil)
	cats := b.Catalogs("de", false)

	assert.Nil(t, cats.Full)
	s, ok := cats.UI.Lookup("hero.title")
	require.True(t, ok)
	assert.Equal(t, "Hi", s)

	vc := visitor.Context{Locale: "de", TimeOfDay: visitor.Morning}
	assert.Equal(t, "Guten Morgen", content.ResolveGreeting(vc, cats))
}

func TestCatalogs_SupportedLocaleWithoutFile(t *testing.T) {
	b := Load(testFS(), []string{"en", "pt"}, nil)
	cats := b.Catalogs("pt", true)

	assert.Nil(t, cats.Full)
	s, ok := cats.UI.Lookup("hero.title")
	require.True(t, ok)
	assert.Equal(t, "Hi", s)
}

func TestLoad_NilFS(t *testing.T) {
	b := Load(nil, []string{"en"}, nil)
	cats := b.Catalogs("en", true)
	assert.Nil(t, cats.Full)
	assert.Nil(t, cats.UI)

	vc := visitor.Context{Locale: "en", HasFullLocalization: true, TimeOfDay: visitor.Night}
	assert.Equal(t, content.FallbackGreeting, content.ResolveGreeting(vc, cats))
}
