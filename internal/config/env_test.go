package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_TIMEOUT", "45s")
	t.Setenv("POLLING_LIMIT", "50")
	t.Setenv("POLLING_DROP_PENDING", "true")
	t.Setenv("WEBHOOK_URL", "https://bot.example.com")
	t.Setenv("WEBHOOK_ADDRESS", "localhost:8443")
	t.Setenv("WORKERS_COUNT", "4")
	t.Setenv("CONFIG", "/etc/bot/config.json")

	var cfg Config
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "123:abc", cfg.Bot.Token)
	assert.Equal(t, 45*time.Second, cfg.Bot.Timeout)
	assert.Equal(t, 50, cfg.Polling.Limit)
	assert.True(t, cfg.Polling.DropPending)
	assert.Equal(t, "https://bot.example.com", cfg.Webhook.PublicURL)
	assert.Equal(t, "localhost:8443", cfg.Webhook.Address)
	assert.Equal(t, 4, cfg.Workers.Count)
	assert.Equal(t, "/etc/bot/config.json", cfg.JSONFilePath)
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("POLLING_LIMIT", "fifty")

	var cfg Config
	assert.Error(t, parseEnv(&cfg))
}
