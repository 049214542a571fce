package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"whatsApp": map[string]any{
			"accessToken":   "",
			"phoneNumberId": "",
		},
		"shop": map[string]any{
			"orderIdPrefix": "TP",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "WHATSAPP_ACCESSTOKEN", want: "whatsApp.accessToken"},
		{envKey: "WHATSAPP_PHONENUMBERID", want: "whatsApp.phoneNumberId"},
		{envKey: "SHOP_ORDERIDPREFIX", want: "shop.orderIdPrefix"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Shop)
	assert.Equal(t, defaultShopName, cfg.Shop.Name)
	assert.Equal(t, "TP", cfg.Shop.OrderIDPrefix)
	assert.Equal(t, "log", cfg.WhatsApp.Provider)
	assert.Equal(t, 10*time.Second, cfg.WhatsApp.Timeout)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, 5, cfg.Storage.MaxImages)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Nil(t, cfg.Redis, "redis stays disabled unless configured")
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Shop:  &ShopConfig{Name: "Luigi's", OrderIDPrefix: "LG"},
		Redis: &RedisConfig{Addr: "localhost:6379"},
	}

	applyDefaults(cfg)

	assert.Equal(t, "Luigi's", cfg.Shop.Name)
	assert.Equal(t, "LG", cfg.Shop.OrderIDPrefix)
	assert.Equal(t, 24*time.Hour, cfg.Redis.DedupTTL)
}
