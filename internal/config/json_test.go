package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"duration string", `"30s"`, 30 * time.Second, false},
		{"compound string", `"1h30m"`, 90 * time.Minute, false},
		{"nanoseconds number", `1000000000`, time.Second, false},
		{"garbage string", `"soon"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(got))
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"bot": {"token": "123:abc", "timeout": "45s", "flood_retries": 3},
		"polling": {"timeout": "25s", "limit": 50, "drop_pending": true},
		"webhook": {"url": "https://bot.example.com", "address": "localhost:8443"},
		"workers": {"count": 4, "queue_size": 128}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Bot.Token)
	assert.Equal(t, 45*time.Second, cfg.Bot.Timeout)
	assert.Equal(t, 3, cfg.Bot.FloodRetries)
	assert.Equal(t, 25*time.Second, cfg.Polling.Timeout)
	assert.Equal(t, 50, cfg.Polling.Limit)
	assert.True(t, cfg.Polling.DropPending)
	assert.Equal(t, "https://bot.example.com", cfg.Webhook.PublicURL)
	assert.Equal(t, "localhost:8443", cfg.Webhook.Address)
	assert.Equal(t, 4, cfg.Workers.Count)
	assert.Equal(t, 128, cfg.Workers.QueueSize)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
