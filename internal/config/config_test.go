package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.garhwalisonglyrics.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, time.Hour, cfg.ListCacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.CollectionCacheTTL)
	assert.Equal(t, 10, cfg.PageLimit)
	assert.Equal(t, "uknews:", cfg.RedisPrefix)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "https://news.example.com/api/v1/")
	t.Setenv("API_FALLBACK_BASE_URLS", " https://news.example.com/api/v1 , http://backup.example.com/api/v1/ ,")
	t.Setenv("LIST_CACHE_TTL", "90s")
	t.Setenv("PAGE_LIMIT", "not-a-number")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 90*time.Second, cfg.ListCacheTTL)
	assert.Equal(t, 10, cfg.PageLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{
		"https://news.example.com/api/v1",
		"http://backup.example.com/api/v1",
	}, cfg.BaseURLs())
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"bad env":      {"APP_ENV", "qa"},
		"bad base url": {"API_BASE_URL", "not a url"},
		"bad limit":    {"PAGE_LIMIT", "500"},
		"bad latitude": {"WEATHER_LAT", "123"},
		"bad level":    {"LOG_LEVEL", "loud"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFallbackObjectNeedsR2(t *testing.T) {
	t.Setenv("FALLBACK_OBJECT_KEY", "fallback/snapshot.json")
	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "abc123")
	_, err = FromEnv()
	assert.NoError(t, err)
}
