package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultProfile(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "David Graça", doc.Name)
	assert.True(t, doc.Speaking.Available)
	assert.Len(t, doc.Speaking.Languages, 4)
	assert.Equal(t, "54", doc.Experience.CountriesReached)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Ada\ntitle: Analyst\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", doc.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("title: nameless\n"))
	assert.Error(t, err)
}

func TestGenerateBotPayload_Deterministic(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.FixedZone("CEST", 2*3600))

	first, err := GenerateBotPayload(doc, now)
	require.NoError(t, err)
	second, err := GenerateBotPayload(doc, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.True(t, strings.HasPrefix(first, BotPayloadHeader))
	assert.Contains(t, first, "2026-10-18T07:30:00Z")

	order := []string{"name:", "title:", "company:", "location:", "expertise:", "speaking:", "experience:", "contact:", "meta:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(first, "\n"+key)
		require.NotEqual(t, -1, idx, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}
}

func TestGenerateBotPayload_IsValidYAML(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)

	out, err := GenerateBotPayload(doc, time.Unix(0, 0))
	require.NoError(t, err)

	var decoded struct {
		Name     string   `yaml:"name"`
		Speaking Speaking `yaml:"speaking"`
		Meta     struct {
			Generated string `yaml:"generated"`
			Format    string `yaml:"format"`
		} `yaml:"meta"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, doc.Name, decoded.Name)
	assert.Equal(t, doc.Speaking.Topics, decoded.Speaking.Topics)
	assert.Equal(t, "1970-01-01T00:00:00Z", decoded.Meta.Generated)
	assert.Equal(t, "yaml", decoded.Meta.Format)
}

func TestGenerateBotPayload_NilDocument(t *testing.T) {
	_, err := GenerateBotPayload(nil, time.Now())
	assert.Error(t, err)
}
