// Package config provides centralized default values for the adaptive profile service
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile applies .env without overriding variables already set.
func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("Ignoring unreadable .env file: %v", err)
			}
			return
		}
		log.Println("Loaded configuration overrides from .env file")
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseFloat(valStr, 64); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%g (default: %g)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, redact(key, val), defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	log.Printf("Config override: %s=%s", key, strings.Join(out, ","))
	return out
}

// getEnvMap parses "k1=v1,k2=v2". Malformed pairs are skipped.
func getEnvMap(key string) map[string]string {
	out := make(map[string]string)
	val := os.Getenv(key)
	if val == "" {
		return out
	}
	for _, pair := range strings.Split(val, ",") {
		k, v, ok := strings.Cut(pair, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	if len(out) > 0 {
		log.Printf("Config override: %s=%s", key, val)
	}
	return out
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func redact(key, val string) string {
	upper := strings.ToUpper(key)
	if strings.Contains(upper, "SECRET") || strings.Contains(upper, "DSN") {
		return "****"
	}
	return val
}

// Storage drivers.
const (
	StorageCookie  = "cookie"
	StorageSQLite3 = "sqlite3"
	StorageLibSQL  = "libsql"
)

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	GinMode            string
	CORSOrigins        []string
	TrustedProxies     []string

	// External Lookups
	APITimeout       time.Duration
	GeoEndpoint      string
	WeatherEndpoint  string
	GeoRatePerMinute float64
	GeoRateBurst     int

	// Content
	SupportedLocales []string
	WebDir           string
	I18nDir          string
	ProfilePath      string

	// Visitor Storage
	StorageDriver     string
	DBDSN             string
	HistoryStorageKey string
	DebugBotKey       string
	VisitorCookie     string
	VisitorSecret     string
	CookieSecure      bool
	CookieMaxAge      time.Duration

	// Logging
	LogDir    string
	LogToFile bool
	LogLevel  string
	// LogChannelLevels overrides LogLevel per channel, e.g. "gateway=debug".
	LogChannelLevels map[string]string
)

func init() {
	Load()
}

// Load reads every setting from the environment. It runs at package init and
// can be called again by tests after changing the environment.
func Load() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	GinMode = getEnvString("GIN_MODE", "release")
	CORSOrigins = getEnvList("CORS_ORIGINS", []string{"*"})
	TrustedProxies = getEnvList("TRUSTED_PROXIES", nil)

	// External Lookups
	APITimeout = getEnvDuration("API_TIMEOUT", 3*time.Second)
	GeoEndpoint = getEnvString("GEO_ENDPOINT", "http://ip-api.com/json")
	WeatherEndpoint = getEnvString("WEATHER_ENDPOINT", "https://api.open-meteo.com/v1/forecast")
	GeoRatePerMinute = getEnvFloat("GEO_RATE_PER_MINUTE", 40)
	GeoRateBurst = getEnvInt("GEO_RATE_BURST", 5)

	// Content
	SupportedLocales = getEnvList("SUPPORTED_LOCALES", []string{"en", "fr", "pt", "es"})
	WebDir = getEnvString("WEB_DIR", "web")
	I18nDir = getEnvString("I18N_DIR", "web/i18n")
	ProfilePath = getEnvString("PROFILE_PATH", "")

	// Visitor Storage
	StorageDriver = strings.ToLower(getEnvString("STORAGE_DRIVER", StorageCookie))
	DBDSN = getEnvString("DB_DSN", "file:adaptive-profile.db")
	HistoryStorageKey = getEnvString("HISTORY_STORAGE_KEY", "adaptive_profile_history")
	DebugBotKey = getEnvString("DEBUG_BOT_KEY", "debug_bot")
	VisitorCookie = getEnvString("VISITOR_COOKIE", "ap_visitor")
	VisitorSecret = getEnvString("VISITOR_SECRET", "")
	CookieSecure = getEnvBool("COOKIE_SECURE", false)
	CookieMaxAge = time.Duration(getEnvInt("COOKIE_MAX_AGE_DAYS", 365)) * 24 * time.Hour

	// Logging
	LogDir = getEnvString("LOG_DIR", "logs")
	LogToFile = getEnvBool("LOG_TO_FILE", false)
	LogLevel = getEnvString("LOG_LEVEL", "INFO")
	LogChannelLevels = getEnvMap("LOG_CHANNEL_LEVELS")
}
