package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_TIMEOUT", "SUPPORTED_LOCALES", "STORAGE_DRIVER", "GEO_RATE_PER_MINUTE", "COOKIE_MAX_AGE_DAYS", "LOG_CHANNEL_LEVELS"} {
		t.Setenv(key, "")
	}
	Load()

	assert.Equal(t, "8080", Port)
	assert.Equal(t, 3*time.Second, APITimeout)
	assert.Equal(t, []string{"en", "fr", "pt", "es"}, SupportedLocales)
	assert.Equal(t, StorageCookie, StorageDriver)
	assert.Equal(t, 40.0, GeoRatePerMinute)
	assert.Equal(t, 365*24*time.Hour, CookieMaxAge)
	assert.Empty(t, LogChannelLevels)
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(Load) // runs after the environment is restored
	t.Setenv("PORT", "9090")
	t.Setenv("API_TIMEOUT", "1500ms")
	t.Setenv("SUPPORTED_LOCALES", " en, de ,, ja ")
	t.Setenv("STORAGE_DRIVER", "SQLite3")
	t.Setenv("GEO_RATE_PER_MINUTE", "12.5")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_MAX_AGE_DAYS", "not-a-number")
	t.Setenv("LOG_CHANNEL_LEVELS", "gateway=debug, storage = warn ,broken,=info")
	Load()

	assert.Equal(t, "9090", Port)
	assert.Equal(t, 1500*time.Millisecond, APITimeout)
	assert.Equal(t, []string{"en", "de", "ja"}, SupportedLocales)
	assert.Equal(t, StorageSQLite3, StorageDriver)
	assert.Equal(t, 12.5, GeoRatePerMinute)
	assert.True(t, CookieSecure)
	assert.Equal(t, 365*24*time.Hour, CookieMaxAge, "unparseable values keep the default")
	assert.Equal(t, map[string]string{"gateway": "debug", "storage": "warn"}, LogChannelLevels)
}
