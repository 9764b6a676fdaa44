package config

import (
	"testing"
	"time"

	"vradmin/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"carriers": map[string]any{
			"postNord": map[string]any{
				"apiKey": "",
			},
		},
		"statusCache": map[string]any{
			"ttl": "0s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "CARRIERS_POSTNORD_APIKEY", want: "carriers.postNord.apiKey"},
		{envKey: "STATUSCACHE_TTL", want: "statusCache.ttl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 2, cfg.Notification.WindowMonths)
	assert.Equal(t, 15*time.Minute, cfg.Notification.PollInterval)
	assert.Equal(t, constants.CacheProviderMemory, cfg.StatusCache.Provider)
	assert.Zero(t, cfg.StatusCache.TTL)
	assert.Equal(t, constants.PubSubProviderNone, cfg.PubSub.Provider)
	assert.Equal(t, "en", cfg.Carriers.PostNord.Locale)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.LogStore.Enabled())
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Notification: &NotificationConfig{WindowMonths: 6, PollInterval: time.Minute, ListLimit: 10},
		StatusCache:  &StatusCacheConfig{Provider: constants.CacheProviderRedis, TTL: time.Hour},
		LogStore:     &LogStoreConfig{Host: "clickhouse"},
	}
	applyDefaults(cfg)

	assert.Equal(t, 6, cfg.Notification.WindowMonths)
	assert.Equal(t, time.Minute, cfg.Notification.PollInterval)
	assert.Equal(t, 10, cfg.Notification.ListLimit)
	assert.Equal(t, constants.CacheProviderRedis, cfg.StatusCache.Provider)
	assert.Equal(t, time.Hour, cfg.StatusCache.TTL)
	assert.True(t, cfg.LogStore.Enabled())
}
